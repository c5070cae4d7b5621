package handler

import (
	"smarttech/config"
	"smarttech/middleware"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/response"
	"smarttech/service"
	"smarttech/types"

	"github.com/gin-gonic/gin"
)

type Checkout struct {
	Service service.ICheckoutService
}

func (h *Checkout) RegisterRouter(r gin.IRouter, conf *config.Config) {
	g := r.Group("/api/checkout", middleware.Auth(conf))
	g.POST("/quote", ctx.Wrap(h.Quote))
	g.POST("/place", ctx.Wrap(h.Place))
}

// Quote 结算页金额试算
func (h *Checkout) Quote(c *gin.Context) error {
	var req types.QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	quote, err := h.Service.Quote(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, quote)
	return nil
}

// Place COD/UPI 下单
func (h *Checkout) Place(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	resp, err := h.Service.Place(c.Request.Context(), email, &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, resp)
	return nil
}
