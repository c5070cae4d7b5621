package dao

import (
	"context"

	"smarttech/models"

	"gorm.io/gorm"
)

type Advertisement struct {
	*Repo[models.Advertisement]
}

func NewAdvertisement(db *gorm.DB) *Advertisement {
	return &Advertisement{Repo: NewRepo[models.Advertisement](db)}
}

// ListActive 前台展示的广告位
func (d *Advertisement) ListActive(ctx context.Context) ([]*models.Advertisement, error) {
	return d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("active = ?", true).Order("sort_order")
	})
}

// ListAll 后台广告管理
func (d *Advertisement) ListAll(ctx context.Context) ([]*models.Advertisement, error) {
	return d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	})
}
