package dao

import (
	"context"

	"smarttech/models"

	"gorm.io/gorm"
)

type Cart struct {
	*Repo[models.CartItem]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{Repo: NewRepo[models.CartItem](db)}
}

// ListByOwner 购物车全部行
func (d *Cart) ListByOwner(ctx context.Context, ownerKey string) ([]*models.CartItem, error) {
	var items []*models.CartItem
	err := d.Model(ctx).
		Where("owner_key = ?", ownerKey).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindLine 查找同商品同规格的行
func (d *Cart) FindLine(ctx context.Context, ownerKey string, productID int64, specName string) (*models.CartItem, error) {
	return d.FindByWhere(ctx, "owner_key = ? AND product_id = ? AND spec_name = ?",
		ownerKey, productID, specName)
}

// DeleteLine 删除一行
func (d *Cart) DeleteLine(ctx context.Context, ownerKey string, productID int64, specName string) error {
	return d.Db.WithContext(ctx).
		Where("owner_key = ? AND product_id = ? AND spec_name = ?", ownerKey, productID, specName).
		Delete(&models.CartItem{}).Error
}

// Clear 清空购物车
func (d *Cart) Clear(ctx context.Context, ownerKey string) error {
	return d.Db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Delete(&models.CartItem{}).Error
}
