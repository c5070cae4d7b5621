package handler

import (
	"net/http"

	"smarttech/config"
	"smarttech/middleware"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/response"
	"smarttech/pkg/upi"
	"smarttech/service"
	"smarttech/types"

	"github.com/gin-gonic/gin"
)

type Pay struct {
	Service service.ICheckoutService
}

func (h *Pay) RegisterRouter(r gin.IRouter, conf *config.Config) {
	g := r.Group("/api/pay", middleware.Auth(conf))
	g.POST("/gateway/initiate", ctx.Wrap(h.GatewayInitiate))
	g.POST("/gateway/confirm", ctx.Wrap(h.GatewayConfirm))
	g.POST("/upi/intent", ctx.Wrap(h.UpiIntent))
	g.POST("/upi/qrcode", ctx.Wrap(h.UpiQRCode))
}

// GatewayInitiate 收银台预下单
func (h *Pay) GatewayInitiate(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.GatewayInitiateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	resp, err := h.Service.InitiateGateway(c.Request.Context(), email, &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, resp)
	return nil
}

// GatewayConfirm 收银台支付回调确认，验签通过才建单
func (h *Pay) GatewayConfirm(c *gin.Context) error {
	var req types.GatewayConfirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	resp, err := h.Service.ConfirmGateway(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, resp)
	return nil
}

// UpiIntent 生成收款链接与订单号
func (h *Pay) UpiIntent(c *gin.Context) error {
	var req types.QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	resp, err := h.Service.UpiIntent(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, resp)
	return nil
}

// UpiQRCode 收款二维码 PNG
func (h *Pay) UpiQRCode(c *gin.Context) error {
	var req types.QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	intent, err := h.Service.UpiIntent(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}

	png, err := upi.QRCodePNG(intent.PayURI, 256)
	if err != nil {
		return err
	}
	c.Header("X-Order-Sn", intent.OrderSn)
	c.Data(http.StatusOK, "image/png", png)
	return nil
}
