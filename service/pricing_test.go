package service

import (
	"testing"

	"smarttech/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsCOD(t *testing.T) {
	lines := []models.OrderLine{
		{Category: models.CategoryAccessories, UnitPrice: 100000, Qty: 1},
	}

	got := ComputeTotals(lines, models.PaymentMethodCOD)
	assert.Equal(t, int64(100000), got.Subtotal)
	assert.Equal(t, int64(5000), got.GstAmount)
	assert.Equal(t, int64(4000), got.DeliveryCharge)
	assert.Equal(t, int64(109000), got.TotalAmount)
}

func TestComputeTotalsOnlineNoDelivery(t *testing.T) {
	lines := []models.OrderLine{
		{Category: models.CategoryAccessories, UnitPrice: 100000, Qty: 1},
	}

	for _, method := range []string{models.PaymentMethodOnline, models.PaymentMethodUpi} {
		got := ComputeTotals(lines, method)
		assert.Equal(t, int64(0), got.DeliveryCharge, method)
		assert.Equal(t, int64(105000), got.TotalAmount, method)
	}
}

func TestComputeTotalsFreeDeliveryThreshold(t *testing.T) {
	// 配件小计达到1500卢比免运费
	lines := []models.OrderLine{
		{Category: models.CategoryAccessories, UnitPrice: 150000, Qty: 1},
	}

	got := ComputeTotals(lines, models.PaymentMethodCOD)
	assert.Equal(t, int64(0), got.DeliveryCharge)
}

func TestComputeTotalsThresholdPerCategory(t *testing.T) {
	// 各分类独立计算小计，单分类达标即整单免运费
	lines := []models.OrderLine{
		{Category: models.CategoryMobiles, UnitPrice: 1000000, Qty: 1},   // 1万卢比，未达2.5万
		{Category: models.CategoryAccessories, UnitPrice: 150000, Qty: 1}, // 配件达标
	}

	got := ComputeTotals(lines, models.PaymentMethodCOD)
	assert.Equal(t, int64(0), got.DeliveryCharge)
}

func TestComputeTotalsThresholdNotMet(t *testing.T) {
	lines := []models.OrderLine{
		{Category: models.CategoryMobiles, UnitPrice: 1000000, Qty: 2}, // 2万卢比，未达2.5万
	}

	got := ComputeTotals(lines, models.PaymentMethodCOD)
	assert.Equal(t, int64(4000), got.DeliveryCharge)
}

func TestComputeTotalsMultiQty(t *testing.T) {
	lines := []models.OrderLine{
		{Category: models.CategoryTvs, UnitPrice: 500000, Qty: 3},
	}

	got := ComputeTotals(lines, models.PaymentMethodCOD)
	assert.Equal(t, int64(1500000), got.Subtotal)
	assert.Equal(t, int64(75000), got.GstAmount)
}

func TestComputeTotalsUnknownCategoryNeverFree(t *testing.T) {
	// 二手机无免运费门槛
	lines := []models.OrderLine{
		{Category: models.CategorySeconds, UnitPrice: 10000000, Qty: 1},
	}

	got := ComputeTotals(lines, models.PaymentMethodCOD)
	assert.Equal(t, int64(4000), got.DeliveryCharge)
}
