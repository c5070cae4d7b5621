package handler

import (
	"strconv"

	"smarttech/config"
	"smarttech/middleware"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/response"
	"smarttech/service"
	"smarttech/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	Service service.IProductService
}

func (h *Product) RegisterRouter(r gin.IRouter, conf *config.Config) {
	g := r.Group("/api/products")
	g.GET("", ctx.Wrap(h.List))
	g.GET("/:id", ctx.Wrap(h.Detail))

	admin := r.Group("/api/admin/products", middleware.Auth(conf), middleware.AdminOnly())
	admin.POST("", ctx.Wrap(h.Create))
	admin.PUT("", ctx.Wrap(h.Update))
	admin.PUT("/rating", ctx.Wrap(h.UpdateRating))
	admin.DELETE("/:id", ctx.Wrap(h.Delete))
}

func (h *Product) List(c *gin.Context) error {
	var req types.ProductListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return err
	}

	items, err := h.Service.List(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Product) Detail(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(400, "无效的商品ID")
	}

	item, err := h.Service.Detail(c.Request.Context(), id)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, item)
	return nil
}

func (h *Product) Create(c *gin.Context) error {
	var req types.ProductCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	item, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, item)
	return nil
}

func (h *Product) Update(c *gin.Context) error {
	var req types.ProductUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	item, err := h.Service.Update(c.Request.Context(), &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, item)
	return nil
}

func (h *Product) UpdateRating(c *gin.Context) error {
	var req types.ProductRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.UpdateRating(c.Request.Context(), req.ID, req.Rating); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Product) Delete(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(400, "无效的商品ID")
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}
