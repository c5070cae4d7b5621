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

type ServiceRequest struct {
	Service service.IServiceRequestService
}

func (h *ServiceRequest) RegisterRouter(r gin.IRouter, conf *config.Config) {
	g := r.Group("/api/services", middleware.Auth(conf))
	g.POST("", ctx.Wrap(h.Create))
	g.GET("", ctx.Wrap(h.Mine))

	admin := r.Group("/api/admin/services", middleware.Auth(conf), middleware.AdminOnly())
	admin.GET("", ctx.Wrap(h.ListAll))
	admin.PUT("/status", ctx.Wrap(h.UpdateStatus))
	admin.POST("/message", ctx.Wrap(h.SendMessage))
	admin.DELETE("/:id", ctx.Wrap(h.Remove))
}

func (h *ServiceRequest) Create(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	var req types.ServiceRequestCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	item, err := h.Service.Create(c.Request.Context(), email, &req)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, item)
	return nil
}

func (h *ServiceRequest) Mine(c *gin.Context) error {
	email, err := ctx.GetUserEmail(c)
	if err != nil {
		return err
	}

	items, err := h.Service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *ServiceRequest) ListAll(c *gin.Context) error {
	items, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *ServiceRequest) UpdateStatus(c *gin.Context) error {
	var req types.ServiceStatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), &req); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *ServiceRequest) SendMessage(c *gin.Context) error {
	var req types.ServiceMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	if err := h.Service.SendMessage(c.Request.Context(), &req); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *ServiceRequest) Remove(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(400, "无效的工单ID")
	}

	if err := h.Service.Remove(c.Request.Context(), id); err != nil {
		return mapErr(err)
	}
	response.Success(c, nil)
	return nil
}
