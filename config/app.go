package config

type App struct {
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	ShopName string `json:"shop_name" yaml:"shop_name"`
}
