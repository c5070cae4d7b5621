package handler

import (
	"smarttech/config"
	"smarttech/middleware"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/response"
	"smarttech/service"

	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	Service service.IDashboardService
}

func (h *Dashboard) RegisterRouter(r gin.IRouter, conf *config.Config) {
	admin := r.Group("/api/admin/dashboard", middleware.Auth(conf), middleware.AdminOnly())
	admin.GET("", ctx.Wrap(h.Overview))
}

func (h *Dashboard) Overview(c *gin.Context) error {
	resp, err := h.Service.Overview(c.Request.Context())
	if err != nil {
		return mapErr(err)
	}
	response.Success(c, resp)
	return nil
}
