package service

import "smarttech/models"

// 金额一律 paise
const (
	gstRatePercent     = 5
	flatDeliveryCharge = 40 * 100
)

// 各分类免运费门槛，任一分类小计达标则整单免运费
var deliveryThresholds = map[string]int64{
	models.CategoryMobiles:     25000 * 100,
	models.CategoryLaptops:     40000 * 100,
	models.CategoryTvs:         30000 * 100,
	models.CategoryAccessories: 1500 * 100,
	models.CategorySmartwatch:  1500 * 100,
}

type Totals struct {
	Subtotal       int64
	GstAmount      int64
	DeliveryCharge int64
	TotalAmount    int64
}

// ComputeTotals 按订单行计算应付金额
// 运费只对货到付款收取，在线支付与UPI免运费
func ComputeTotals(lines []models.OrderLine, paymentMethod string) Totals {
	var subtotal int64
	byCategory := make(map[string]int64)
	for i := range lines {
		lineTotal := lines[i].UnitPrice * int64(lines[i].Qty)
		subtotal += lineTotal
		byCategory[lines[i].Category] += lineTotal
	}

	t := Totals{
		Subtotal:  subtotal,
		GstAmount: subtotal * gstRatePercent / 100,
	}

	if paymentMethod == models.PaymentMethodCOD {
		t.DeliveryCharge = flatDeliveryCharge
		for category, catSubtotal := range byCategory {
			threshold, ok := deliveryThresholds[category]
			if ok && catSubtotal >= threshold {
				t.DeliveryCharge = 0
				break
			}
		}
	}

	t.TotalAmount = t.Subtotal + t.GstAmount + t.DeliveryCharge
	return t
}
