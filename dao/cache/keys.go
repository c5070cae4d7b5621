package cache

import "fmt"

const (
	keyProductList     = "smarttech:catalog:list:%s" // 分类
	keyProductDetail   = "smarttech:catalog:item:%d"
	keyCheckoutSession = "smarttech:checkout:session:%s" // 网关单号
)

func ProductListKey(category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf(keyProductList, category)
}

func ProductDetailKey(id int64) string {
	return fmt.Sprintf(keyProductDetail, id)
}

func CheckoutSessionKey(gatewayOrderID string) string {
	return fmt.Sprintf(keyCheckoutSession, gatewayOrderID)
}
