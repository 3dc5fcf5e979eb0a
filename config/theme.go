package config

// Theme 主题配置
type Theme struct {
	Path string `mapstructure:"path"` // 主题模板目录，如 themes/default
	Glob string `mapstructure:"glob"` // 模板加载通配符，如 themes/default/**/*.html
}

// Oauth2 第三方登录入口配置，键名即登录方式标识
type Oauth2 struct {
	ClientID    string `mapstructure:"client_id"`
	RedirectURL string `mapstructure:"redirect_url"`
}
