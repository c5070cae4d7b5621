package service

import "errors"

// 业务错误，handler 层负责映射为响应码
var (
	ErrNotFound                = errors.New("记录不存在")
	ErrOutOfStock              = errors.New("库存不足")
	ErrMissingVariantSelector  = errors.New("未选择商品规格")
	ErrUnknownVariant          = errors.New("商品规格不存在")
	ErrMissingEvidence         = errors.New("缺少付款截图")
	ErrInvalidSignature        = errors.New("支付验签失败")
	ErrInvalidStatusTransition = errors.New("订单状态不允许流转")
	ErrSessionExpired          = errors.New("支付会话不存在或已过期")
	ErrGatewayUnavailable      = errors.New("支付网关暂不可用")
)
