package config

// RazorpayConfig 在线支付网关配置
type RazorpayConfig struct {
	KeyID     string `yaml:"key_id"`     // 网关 Key ID（下发给前端唤起收银台）
	KeySecret string `yaml:"key_secret"` // 回调验签共享密钥
	Currency  string `yaml:"currency"`   // 默认 INR
}

// UpiConfig 手动 UPI 扫码收款配置
type UpiConfig struct {
	PayeeID      string `yaml:"payee_id"`      // 收款方 VPA
	PayeeName    string `yaml:"payee_name"`    // 收款方名称
	MerchantCode string `yaml:"merchant_code"` // mc 商户类别码
}

func ProvideRazorpayConfig(cfg *Config) *RazorpayConfig {
	return cfg.Razorpay
}

func ProvideUpiConfig(cfg *Config) *UpiConfig {
	return cfg.Upi
}
