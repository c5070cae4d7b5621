package types

type AdvertisementCreateReq struct {
	Title     string `json:"title"`
	ImagePath string `json:"image_path" binding:"required"`
	TargetURL string `json:"target_url"`
	SortOrder int    `json:"sort_order"`
}

type AdvertisementUpdateReq struct {
	ID        int64  `json:"id" binding:"required"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
	TargetURL string `json:"target_url"`
	Active    *bool  `json:"active"`
	SortOrder *int   `json:"sort_order"`
}
