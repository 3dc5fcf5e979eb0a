package config

// Sns 评论同步配置
type Sns struct {
	SyncComments bool   `mapstructure:"sync_comments"` // 是否将评论同步到外部平台
	Endpoint     string `mapstructure:"endpoint"`      // 外部平台接收地址
	Timeout      int    `mapstructure:"timeout"`       // 推送超时时间（秒）
}
