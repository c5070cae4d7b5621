package dao

import (
	"context"

	"smarttech/models"

	"gorm.io/gorm"
)

type ServiceRequest struct {
	*Repo[models.ServiceRequest]
}

func NewServiceRequest(db *gorm.DB) *ServiceRequest {
	return &ServiceRequest{Repo: NewRepo[models.ServiceRequest](db)}
}

// ListByEmail 用户自己的工单
func (d *ServiceRequest) ListByEmail(ctx context.Context, email string) ([]*models.ServiceRequest, error) {
	return d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email).Order("created_at DESC")
	})
}

// ListAll 后台工单列表
func (d *ServiceRequest) ListAll(ctx context.Context) ([]*models.ServiceRequest, error) {
	return d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	})
}
