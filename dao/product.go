package dao

import (
	"context"

	"smarttech/models"

	"gorm.io/gorm"
)

type Product struct {
	*Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{Repo: NewRepo[models.Product](db)}
}

// ListByCategory 分类商品列表，category 为空则返回全部
func (d *Product) ListByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	db := d.Model(ctx)
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var items []*models.Product
	if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search 标题/品牌模糊搜索
func (d *Product) Search(ctx context.Context, keyword string) ([]*models.Product, error) {
	var items []*models.Product
	like := "%" + keyword + "%"
	err := d.Model(ctx).
		Where("title LIKE ? OR brand LIKE ?", like, like).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DecrStock 条件扣减聚合库存，库存不足返回 0 行
func (d *Product) DecrStock(tx *gorm.DB, productID int64, qty int) (int64, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}

// UpdateVariants 乐观更新规格与聚合库存，读到的聚合值被并发改掉则返回 0 行
func (d *Product) UpdateVariants(tx *gorm.DB, productID int64, variants []models.Variant, newStock, readStock int) (int64, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock = ?", productID, readStock).
		Select("variants", "stock").
		Updates(models.Product{Variants: variants, Stock: newStock})
	return res.RowsAffected, res.Error
}
