package types

import "smarttech/models"

type ProductListReq struct {
	Category string `form:"category"` // 为空返回全部
	Keyword  string `form:"keyword"`  // 标题/品牌搜索
}

type ProductCreateReq struct {
	Title           string           `json:"title" binding:"required"`
	Category        string           `json:"category" binding:"required"`
	Brand           string           `json:"brand"`
	Description     string           `json:"description"`
	Price           int64            `json:"price"`             // paise，规格商品可为0
	MrpPrice        int64            `json:"mrp_price"`         // paise
	DiscountEndDate string           `json:"discount_end_date"` // RFC3339，可空
	Stock           int              `json:"stock"`
	Variants        []models.Variant `json:"variants"`
	Images          []string         `json:"images"`
	Specs           map[string]any   `json:"specs"`
}

type ProductRatingReq struct {
	ID     int64   `json:"id" binding:"required"`
	Rating float64 `json:"rating" binding:"min=0,max=5"`
}

type ProductUpdateReq struct {
	ID              int64            `json:"id" binding:"required"`
	Title           string           `json:"title"`
	Brand           string           `json:"brand"`
	Description     string           `json:"description"`
	Price           int64            `json:"price"`
	MrpPrice        int64            `json:"mrp_price"`
	DiscountEndDate string           `json:"discount_end_date"`
	Stock           *int             `json:"stock"` // 规格商品忽略
	Variants        []models.Variant `json:"variants"`
	Images          []string         `json:"images"`
	Specs           map[string]any   `json:"specs"`
}
