package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"smarttech/config"
	"smarttech/models"
	"smarttech/types"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway 在线支付网关，测试用假实现替换
type PaymentGateway interface {
	// CreateOrder 预下单，返回网关侧订单号
	CreateOrder(amountPaise int64, currency, receipt string) (string, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
	conf   *config.RazorpayConfig
}

var _ PaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(conf *config.RazorpayConfig) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(conf.KeyID, conf.KeySecret),
		conf:   conf,
	}
}

func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", ErrGatewayUnavailable
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", ErrGatewayUnavailable
	}
	return id, nil
}

// VerifyGatewaySignature 回调验签 HMAC-SHA256(secret, orderID|paymentID)
func VerifyGatewaySignature(gatewayOrderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// PaymentStrategy 下单前按支付方式校验要素
type PaymentStrategy interface {
	Method() string
	Validate(req *types.CheckoutReq) error
}

type CODStrategy struct{}

func (CODStrategy) Method() string { return models.PaymentMethodCOD }

func (CODStrategy) Validate(req *types.CheckoutReq) error { return nil }

type UpiStrategy struct{}

func (UpiStrategy) Method() string { return models.PaymentMethodUpi }

// Validate UPI必须附带付款截图
func (UpiStrategy) Validate(req *types.CheckoutReq) error {
	if req.ScreenshotPath == "" {
		return ErrMissingEvidence
	}
	return nil
}
