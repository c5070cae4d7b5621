package types

type CartAddReq struct {
	ProductID int64  `json:"product_id" binding:"required"`
	SpecName  string `json:"spec_name"` // 规格商品必填
	Qty       int    `json:"qty"`       // 默认1
}

type CartUpdateReq struct {
	ProductID int64  `json:"product_id" binding:"required"`
	SpecName  string `json:"spec_name"`
	Qty       int    `json:"qty" binding:"required"` // 目标数量，0即删除
}

// CartMergeReq 登录后把匿名购物车并入账号
type CartMergeReq struct {
	AnonKey string `json:"anon_key" binding:"required"`
}

type CartRemoveReq struct {
	ProductID int64  `json:"product_id" binding:"required"`
	SpecName  string `json:"spec_name"`
}

type CartLineResp struct {
	ProductID int64  `json:"product_id"`
	SpecName  string `json:"spec_name,omitempty"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unit_price"` // paise
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"line_total"` // paise
}

type CartResp struct {
	Lines    []CartLineResp `json:"lines"`
	Subtotal int64          `json:"subtotal"` // paise
}
