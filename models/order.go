package models

import (
	"time"

	"gorm.io/datatypes"
)

// 订单状态
const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// 支付方式
const (
	PaymentMethodCOD     = "cod"
	PaymentMethodOnline  = "online"
	PaymentMethodUpi     = "upi"
	PaymentMethodCODPaid = "COD - Paid" // 货到付款妥投后回写
)

// OrderLine 下单时固化的商品快照
type OrderLine struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	SpecName  string `json:"spec_name,omitempty"` // 规格商品必填
	UnitPrice int64  `json:"unit_price"`          // paise
	Qty       int    `json:"qty"`
	Image     string `json:"image,omitempty"`
}

type Order struct {
	ID                int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderSn           string         `gorm:"column:order_sn;type:varchar(64);uniqueIndex;not null" json:"order_sn"`
	OrderDate         time.Time      `gorm:"column:order_date;not null" json:"order_date"`
	UserEmail         string         `gorm:"column:user_email;type:varchar(128);index;not null" json:"user_email"`
	CustomerName      string         `gorm:"column:customer_name;type:varchar(128)" json:"customer_name"`
	Phone             string         `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Address           string         `gorm:"column:address;type:text" json:"address"`
	Subtotal          int64          `gorm:"column:subtotal;not null;comment:商品小计 paise" json:"subtotal"`
	GstAmount         int64          `gorm:"column:gst_amount;not null;comment:税费 paise" json:"gst_amount"`
	DeliveryCharge    int64          `gorm:"column:delivery_charge;not null;comment:运费 paise" json:"delivery_charge"`
	TotalAmount       int64          `gorm:"column:total_amount;not null;comment:应付总额 paise" json:"total_amount"`
	Status            string         `gorm:"column:status;type:varchar(16);index;not null;default:Pending" json:"status"`
	PaymentMethod     string         `gorm:"column:payment_method;type:varchar(16);not null" json:"payment_method"`
	RazorpayOrderID   string         `gorm:"column:razorpay_order_id;type:varchar(64)" json:"razorpay_order_id"`
	RazorpayPaymentID string         `gorm:"column:razorpay_payment_id;type:varchar(64)" json:"razorpay_payment_id"`
	ScreenshotPath    string         `gorm:"column:screenshot_path;type:varchar(255)" json:"screenshot_path"`
	Products          []OrderLine    `gorm:"column:products_summary;serializer:json" json:"products"`
	EmailSummary      datatypes.JSON `gorm:"column:email_summary" json:"email_summary"`
	CreatedAt         time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
