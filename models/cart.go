package models

import "time"

// CartItem 购物车行，价格以服务端解析结果为准
type CartItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OwnerKey  string    `gorm:"column:owner_key;type:varchar(128);uniqueIndex:uk_owner_product_spec;not null;comment:用户邮箱" json:"owner_key"`
	ProductID int64     `gorm:"column:product_id;uniqueIndex:uk_owner_product_spec;not null" json:"product_id"`
	SpecName  string    `gorm:"column:spec_name;type:varchar(64);uniqueIndex:uk_owner_product_spec;default:''" json:"spec_name"`
	Title     string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Category  string    `gorm:"column:category;type:varchar(32)" json:"category"`
	Image     string    `gorm:"column:image;type:varchar(255)" json:"image"`
	UnitPrice int64     `gorm:"column:unit_price;not null;comment:paise" json:"unit_price"`
	Qty       int       `gorm:"column:qty;not null;default:1" json:"qty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
