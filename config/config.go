package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Razorpay *RazorpayConfig `json:"razorpay" yaml:"razorpay"`
	Upi      *UpiConfig      `json:"upi" yaml:"upi"`
	Mail     *MailConfig     `json:"mail" yaml:"mail"`
	Upload   *Upload         `json:"upload" yaml:"upload"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}

// Upload 本地上传目录（广告图、商品图、UPI 付款截图）
type Upload struct {
	Dir string `json:"dir" yaml:"dir"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("解析 config.yaml 读取错误: %v", err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
