package service

import (
	"errors"

	"smarttech/dao"
	"smarttech/models"

	"gorm.io/gorm"
)

type IInventoryService interface {
	// DeductTx 在事务内按订单行扣减库存，任一行不足则整体失败
	DeductTx(tx *gorm.DB, lines []models.OrderLine) error
}

type InventoryService struct {
	ProductDao *dao.Product
}

var _ IInventoryService = (*InventoryService)(nil)

func NewInventoryService(productDao *dao.Product) *InventoryService {
	return &InventoryService{ProductDao: productDao}
}

func (s *InventoryService) DeductTx(tx *gorm.DB, lines []models.OrderLine) error {
	for i := range lines {
		if err := s.deductLine(tx, &lines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *InventoryService) deductLine(tx *gorm.DB, line *models.OrderLine) error {
	var product models.Product
	if err := tx.First(&product, line.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !product.HasVariants() {
		rows, err := s.ProductDao.DecrStock(tx, line.ProductID, line.Qty)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrOutOfStock
		}
		return nil
	}

	if line.SpecName == "" {
		return ErrMissingVariantSelector
	}
	idx := product.FindVariant(line.SpecName)
	if idx < 0 {
		return ErrUnknownVariant
	}
	if product.Variants[idx].Stock < line.Qty {
		return ErrOutOfStock
	}

	// 扣减规格库存后用规格之和回写聚合库存
	product.Variants[idx].Stock -= line.Qty
	newStock := product.AggregateStock()

	rows, err := s.ProductDao.UpdateVariants(tx, product.ID, product.Variants, newStock, product.Stock)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 聚合值被并发修改，放弃本次事务
		return ErrOutOfStock
	}
	return nil
}
