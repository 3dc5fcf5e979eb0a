package config

type System struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Env            string   `mapstructure:"env"`
	StartTime      string   `mapstructure:"start_time"`
	MachineID      int64    `mapstructure:"machine_id"`
	AllowedOrigins []string `mapstructure:"allowed_origins"` // 跨域白名单，空表示全放开
}
