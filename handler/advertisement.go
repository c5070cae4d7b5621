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

type Advertisement struct {
	Service service.IAdvertService
}

func (h *Advertisement) RegisterRouter(r gin.IRouter, conf *config.Config) {
	r.GET("/api/advertisements", ctx.Wrap(h.ListActive))

	admin := r.Group("/api/admin/advertisements", middleware.Auth(conf), middleware.AdminOnly())
	admin.GET("", ctx.Wrap(h.ListAll))
	admin.POST("", ctx.Wrap(h.Create))
	admin.PUT("", ctx.Wrap(h.Update))
	admin.DELETE("/:id", ctx.Wrap(h.Remove))
}

func (h *Advertisement) ListActive(c *gin.Context) error {
	items, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Advertisement) ListAll(c *gin.Context) error {
	items, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Advertisement) Create(c *gin.Context) error {
	var req types.AdvertisementCreateReq
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

func (h *Advertisement) Update(c *gin.Context) error {
	var req types.AdvertisementUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.Update(c.Request.Context(), &req); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Advertisement) Remove(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(400, "无效的广告ID")
	}

	if err := h.Service.Remove(c.Request.Context(), id); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}
