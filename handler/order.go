package handler

import (
	"smarttech/config"
	"smarttech/middleware"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/jwt"
	"smarttech/pkg/response"
	"smarttech/service"
	"smarttech/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Service service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter, conf *config.Config) {
	g := r.Group("/api/orders", middleware.Auth(conf))
	g.GET("", ctx.Wrap(h.MyOrders))
	g.GET("/:order_sn", ctx.Wrap(h.Detail))

	admin := r.Group("/api/admin/orders", middleware.Auth(conf), middleware.AdminOnly())
	admin.GET("", ctx.Wrap(h.ListAll))
	admin.PUT("/status", ctx.Wrap(h.UpdateStatus))
	admin.DELETE("/:order_sn", ctx.Wrap(h.Remove))
}

func (h *Order) MyOrders(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	items, err := h.Service.ListByUser(c.Request.Context(), email)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Order) Detail(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	order, err := h.Service.Detail(c.Request.Context(), c.Param("order_sn"))
	if err != nil {
		return mapErr(err)
	}
	// 普通用户只能看自己的订单
	role, _ := c.Get(ctx.CtxUserRole)
	if role != jwt.RoleAdmin && order.UserEmail != email {
		return response.NewError(codeNotFound, "记录不存在")
	}
	response.Success(c, order)
	return nil
}

func (h *Order) ListAll(c *gin.Context) error {
	items, err := h.Service.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Order) UpdateStatus(c *gin.Context) error {
	var req types.OrderStatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	order, err := h.Service.UpdateStatus(c.Request.Context(), req.OrderSn, req.Status)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, order)
	return nil
}

func (h *Order) Remove(c *gin.Context) error {
	if err := h.Service.Remove(c.Request.Context(), c.Param("order_sn")); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}
