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

type Cart struct {
	Service service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter, conf *config.Config) {
	// 游客凭 X-Guest-Key 也能维护购物车
	g := r.Group("/api/cart", middleware.CartIdentity(conf))
	g.GET("", ctx.Wrap(h.Get))
	g.POST("/items", ctx.Wrap(h.Add))
	g.PUT("/items", ctx.Wrap(h.Update))
	g.DELETE("/items", ctx.Wrap(h.Remove))
	g.DELETE("", ctx.Wrap(h.Clear))

	r.POST("/api/cart/merge", middleware.Auth(conf), ctx.Wrap(h.Merge))
}

func (h *Cart) Get(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	cart, err := h.Service.Get(c.Request.Context(), email)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, cart)
	return nil
}

func (h *Cart) Add(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.CartAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.Add(c.Request.Context(), email, &req); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) Update(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.CartUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.Update(c.Request.Context(), email, &req); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) Remove(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.CartRemoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.Remove(c.Request.Context(), email, &req); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) Merge(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.CartMergeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.Merge(c.Request.Context(), "guest:"+req.AnonKey, email); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) Clear(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	if err := h.Service.Clear(c.Request.Context(), email); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}
