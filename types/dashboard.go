package types

type MonthlyStat struct {
	Month   string `json:"month"`   // YYYY-MM
	Revenue int64  `json:"revenue"` // paise
	Orders  int64  `json:"orders"`
}

type TopSeller struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
}

type DashboardResp struct {
	Monthly    []MonthlyStat `json:"monthly"`
	TopSellers []TopSeller   `json:"top_sellers"`
}
