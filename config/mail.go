package config

// MailConfig 邮件通知配置（订单确认 / 状态变更）
type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

func ProvideMailConfig(cfg *Config) *MailConfig {
	return cfg.Mail
}
