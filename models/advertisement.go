package models

import "time"

// Advertisement 首页轮播广告
type Advertisement struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255)" json:"title"`
	ImagePath string    `gorm:"column:image_path;type:varchar(255);not null" json:"image_path"`
	TargetURL string    `gorm:"column:target_url;type:varchar(255)" json:"target_url"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}
