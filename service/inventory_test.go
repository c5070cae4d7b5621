package service

import (
	"testing"

	"smarttech/dao"
	"smarttech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeductSimpleProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))
	p := seedSimpleProduct(t, db, 100000, 3)

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{
			{ProductID: p.ID, Category: p.Category, Qty: 1},
		})
	})
	require.NoError(t, err)

	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 2, got.Stock)
}

func TestDeductInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))
	p1 := seedSimpleProduct(t, db, 100000, 5)
	p2 := &models.Product{Title: "HDMI Cable", Category: models.CategoryAccessories, Price: 50000, Stock: 1}
	require.NoError(t, db.Create(p2).Error)

	// 第二行不足，第一行的扣减也要回滚
	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{
			{ProductID: p1.ID, Qty: 2},
			{ProductID: p2.ID, Qty: 3},
		})
	})
	assert.ErrorIs(t, err, ErrOutOfStock)

	var got1, got2 models.Product
	require.NoError(t, db.First(&got1, p1.ID).Error)
	require.NoError(t, db.First(&got2, p2.ID).Error)
	assert.Equal(t, 5, got1.Stock)
	assert.Equal(t, 1, got2.Stock)
}

func TestDeductVariantUpdatesAggregate(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))
	p := seedVariantProduct(t, db, []models.Variant{
		{SpecName: "8GB/128GB", Price: 2000000, Stock: 4},
		{SpecName: "12GB/256GB", Price: 2500000, Stock: 2},
	})
	require.Equal(t, 6, p.Stock)

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{
			{ProductID: p.ID, SpecName: "12GB/256GB", Qty: 2},
		})
	})
	require.NoError(t, err)

	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 4, got.Stock)
	idx := got.FindVariant("12GB/256GB")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 0, got.Variants[idx].Stock)
	idx = got.FindVariant("8GB/128GB")
	assert.Equal(t, 4, got.Variants[idx].Stock)
}

func TestDeductVariantRequiresSpec(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))
	p := seedVariantProduct(t, db, []models.Variant{
		{SpecName: "8GB/128GB", Price: 2000000, Stock: 4},
	})

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{{ProductID: p.ID, Qty: 1}})
	})
	assert.ErrorIs(t, err, ErrMissingVariantSelector)
}

func TestDeductUnknownVariant(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))
	p := seedVariantProduct(t, db, []models.Variant{
		{SpecName: "8GB/128GB", Price: 2000000, Stock: 4},
	})

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{
			{ProductID: p.ID, SpecName: "16GB/512GB", Qty: 1},
		})
	})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestDeductVariantOutOfStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))
	p := seedVariantProduct(t, db, []models.Variant{
		{SpecName: "8GB/128GB", Price: 2000000, Stock: 1},
	})

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{
			{ProductID: p.ID, SpecName: "8GB/128GB", Qty: 2},
		})
	})
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestDeductMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(dao.NewProduct(db))

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.DeductTx(tx, []models.OrderLine{{ProductID: 404, Qty: 1}})
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
