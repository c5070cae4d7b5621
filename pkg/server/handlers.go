package server

import (
	"smarttech/config"
	"smarttech/handler"

	"github.com/gin-gonic/gin"
)

// Handlers 路由注册集合，wire 统一注入
type Handlers struct {
	Product        *handler.Product
	Cart           *handler.Cart
	Checkout       *handler.Checkout
	Pay            *handler.Pay
	Order          *handler.Order
	ServiceRequest *handler.ServiceRequest
	Advertisement  *handler.Advertisement
	Dashboard      *handler.Dashboard
	Upload         *handler.Upload
}

type router interface {
	RegisterRouter(r gin.IRouter, conf *config.Config)
}

func (h *Handlers) routers() []router {
	return []router{
		h.Product,
		h.Cart,
		h.Checkout,
		h.Pay,
		h.Order,
		h.ServiceRequest,
		h.Advertisement,
		h.Dashboard,
		h.Upload,
	}
}
