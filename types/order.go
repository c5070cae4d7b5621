package types

import "smarttech/models"

// CheckoutLine 下单请求行，价格由服务端解析
type CheckoutLine struct {
	ProductID int64  `json:"product_id" binding:"required"`
	SpecName  string `json:"spec_name"` // 规格商品必填
	Qty       int    `json:"qty" binding:"required,min=1"`
}

// CheckoutReq COD / UPI 直接下单
type CheckoutReq struct {
	OrderSn        string         `json:"order_sn"` // UPI 扫码后回传，保证重试幂等
	Lines          []CheckoutLine `json:"lines" binding:"required,min=1"`
	CustomerName   string         `json:"customer_name" binding:"required"`
	Phone          string         `json:"phone" binding:"required"`
	Address        string         `json:"address" binding:"required"`
	PaymentMethod  string         `json:"payment_method" binding:"required,oneof=cod upi"`
	ScreenshotPath string         `json:"screenshot_path"` // upi 必填，付款截图
}

// QuoteReq 结算页金额试算
type QuoteReq struct {
	Lines         []CheckoutLine `json:"lines" binding:"required,min=1"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=cod online upi"`
}

type QuoteResp struct {
	Subtotal       int64 `json:"subtotal"`        // paise
	GstAmount      int64 `json:"gst_amount"`      // paise
	DeliveryCharge int64 `json:"delivery_charge"` // paise
	TotalAmount    int64 `json:"total_amount"`    // paise
}

// GatewayInitiateReq 网关收银台预下单
type GatewayInitiateReq struct {
	Lines        []CheckoutLine `json:"lines" binding:"required,min=1"`
	CustomerName string         `json:"customer_name" binding:"required"`
	Phone        string         `json:"phone" binding:"required"`
	Address      string         `json:"address" binding:"required"`
}

type GatewayInitiateResp struct {
	GatewayOrderID string `json:"gateway_order_id"`
	KeyID          string `json:"key_id"`
	Amount         int64  `json:"amount"` // paise
	Currency       string `json:"currency"`
}

// GatewayConfirmReq 收银台回调确认
type GatewayConfirmReq struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// CheckoutSession 网关预下单后暂存的下单上下文
// OrderSn 在预下单时固定，回调重放落到同一条订单
type CheckoutSession struct {
	OrderSn        string             `json:"order_sn"`
	UserEmail      string             `json:"user_email"`
	CustomerName   string             `json:"customer_name"`
	Phone          string             `json:"phone"`
	Address        string             `json:"address"`
	Lines          []models.OrderLine `json:"lines"`
	Subtotal       int64              `json:"subtotal"`
	GstAmount      int64              `json:"gst_amount"`
	DeliveryCharge int64              `json:"delivery_charge"`
	TotalAmount    int64              `json:"total_amount"`
}

type OrderStatusUpdateReq struct {
	OrderSn string `json:"order_sn" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=Paid Shipped Delivered Cancelled"`
}

type PlaceOrderResp struct {
	OrderSn     string `json:"order_sn"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"` // paise
}

// UpiIntentResp 扫码支付信息
type UpiIntentResp struct {
	OrderSn string `json:"order_sn"` // 下单时回传
	PayURI  string `json:"pay_uri"`
	Amount  int64  `json:"amount"` // paise
}
