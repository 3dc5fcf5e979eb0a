package config

// Search 搜索引擎配置
// External 为 true 时所有搜索请求直接重定向到外部引擎，
// ExternalURL 中的 %s 会被替换为原始查询词
type Search struct {
	External    bool   `mapstructure:"external"`     // 是否使用外部搜索引擎
	ExternalURL string `mapstructure:"external_url"` // 外部引擎查询地址模板
	Index       string `mapstructure:"index"`        // 内部引擎索引名
}
