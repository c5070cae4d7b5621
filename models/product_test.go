package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestEffectivePriceSimpleProduct(t *testing.T) {
	future := timePtr(time.Now().Add(24 * time.Hour))
	past := timePtr(time.Now().Add(-24 * time.Hour))

	cases := []struct {
		name    string
		product Product
		want    int64
	}{
		{"折扣期内用折扣价", Product{Category: CategoryTvs, Price: 90000, MrpPrice: 100000, DiscountEndDate: future}, 90000},
		{"无截止日期折扣长期有效", Product{Category: CategoryTvs, Price: 90000, MrpPrice: 100000}, 90000},
		{"折扣过期回落划线价", Product{Category: CategoryTvs, Price: 90000, MrpPrice: 100000, DiscountEndDate: past}, 100000},
		{"折扣价倒挂回落划线价", Product{Category: CategoryTvs, Price: 120000, MrpPrice: 100000}, 100000},
		{"仅有划线价", Product{Category: CategoryTvs, MrpPrice: 100000}, 100000},
		{"仅有售价", Product{Category: CategoryTvs, Price: 90000}, 90000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.product.EffectivePrice("")
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectivePriceVariant(t *testing.T) {
	future := timePtr(time.Now().Add(24 * time.Hour))
	past := timePtr(time.Now().Add(-24 * time.Hour))

	p := Product{
		Category: CategoryMobiles,
		Variants: []Variant{
			{SpecName: "8GB/128GB", Price: 1800000, MrpPrice: 2000000, DiscountEndDate: future, Stock: 3},
			{SpecName: "12GB/256GB", Price: 2200000, MrpPrice: 2500000, DiscountEndDate: past, Stock: 2},
			{SpecName: "16GB/512GB", Price: 3200000, MrpPrice: 3000000, Stock: 1},
		},
	}

	got, ok := p.EffectivePrice("8GB/128GB")
	require.True(t, ok)
	assert.Equal(t, int64(1800000), got)

	// 规格折扣过期按规格划线价
	got, ok = p.EffectivePrice("12GB/256GB")
	require.True(t, ok)
	assert.Equal(t, int64(2500000), got)

	// 规格折扣价倒挂回落划线价
	got, ok = p.EffectivePrice("16GB/512GB")
	require.True(t, ok)
	assert.Equal(t, int64(3000000), got)

	_, ok = p.EffectivePrice("32GB/1TB")
	assert.False(t, ok)
}

func TestVariantAggregateStock(t *testing.T) {
	p := Product{
		Category: CategoryMobiles,
		Variants: []Variant{
			{SpecName: "8GB/128GB", Price: 1800000, Stock: 3},
			{SpecName: "12GB/256GB", Price: 2200000, Stock: 2},
		},
	}
	assert.Equal(t, 5, p.AggregateStock())
	assert.True(t, p.HasVariants())

	// 不按规格管理的分类不走规格库存
	p.Category = CategoryAccessories
	assert.False(t, p.HasVariants())
}
