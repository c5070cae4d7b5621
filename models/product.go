package models

import (
	"time"

	"gorm.io/datatypes"
)

// 商品分类
const (
	CategoryMobiles     = "mobiles"
	CategoryLaptops     = "laptops"
	CategoryTvs         = "tvs"
	CategoryAccessories = "accessories"
	CategorySmartwatch  = "smartwatch"
	CategorySeconds     = "seconds" // 二手机
)

// VariantCategories 按规格（内存/存储）拆分库存的分类
var VariantCategories = map[string]bool{
	CategoryMobiles: true,
	CategoryLaptops: true,
	CategorySeconds: true,
}

// Variant 商品规格，价格、折扣与库存均挂在规格上
type Variant struct {
	SpecName        string     `json:"spec_name"` // 规格名，如 8GB/128GB
	Price           int64      `json:"price"`     // 折扣价，单位 paise
	MrpPrice        int64      `json:"mrp_price"` // 划线价 paise
	DiscountEndDate *time.Time `json:"discount_end_date"`
	Stock           int        `json:"stock"`  // 规格库存
	Images          []string   `json:"images"` // 规格图，空则用商品图
}

// EffectivePrice 折扣价仅在低于划线价且在折扣期内时生效，过期或倒挂回落划线价
func (v *Variant) EffectivePrice() int64 {
	return resolveUnitPrice(v.Price, v.MrpPrice, v.DiscountEndDate)
}

type Product struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title           string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Category        string         `gorm:"column:category;type:varchar(32);index;not null" json:"category"`
	Brand           string         `gorm:"column:brand;type:varchar(64)" json:"brand"`
	Description     string         `gorm:"column:description;type:text" json:"description"`
	Price           int64          `gorm:"column:price;not null;comment:售价 paise" json:"price"`
	MrpPrice        int64          `gorm:"column:mrp_price;comment:划线价 paise" json:"mrp_price"`
	DiscountEndDate *time.Time     `gorm:"column:discount_end_date" json:"discount_end_date"`
	Rating          float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	Stock           int            `gorm:"column:stock;not null;default:0;comment:聚合库存" json:"stock"`
	Variants        []Variant      `gorm:"column:variants;serializer:json" json:"variants"`
	Images          []string       `gorm:"column:images;serializer:json" json:"images"`
	Specs           datatypes.JSON `gorm:"column:specs" json:"specs"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// HasVariants 是否按规格管理库存
func (p *Product) HasVariants() bool {
	return VariantCategories[p.Category] && len(p.Variants) > 0
}

// FindVariant 按规格名查找，找不到返回 -1
func (p *Product) FindVariant(specName string) int {
	for i := range p.Variants {
		if p.Variants[i].SpecName == specName {
			return i
		}
	}
	return -1
}

// AggregateStock 各规格库存之和
func (p *Product) AggregateStock() int {
	total := 0
	for i := range p.Variants {
		total += p.Variants[i].Stock
	}
	return total
}

// EffectivePrice 规格商品按所选规格做折扣判定，普通商品按自身字段
func (p *Product) EffectivePrice(specName string) (int64, bool) {
	if p.HasVariants() {
		idx := p.FindVariant(specName)
		if idx < 0 {
			return 0, false
		}
		return p.Variants[idx].EffectivePrice(), true
	}
	return resolveUnitPrice(p.Price, p.MrpPrice, p.DiscountEndDate), true
}

func resolveUnitPrice(price, mrpPrice int64, end *time.Time) int64 {
	if mrpPrice > 0 && price > 0 && price < mrpPrice {
		if end == nil || time.Now().Before(*end) {
			return price
		}
		return mrpPrice
	}
	if mrpPrice > 0 {
		return mrpPrice
	}
	return price
}
