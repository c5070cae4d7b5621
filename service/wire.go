package service

import (
	"smarttech/dao/cache"
	"smarttech/pkg/mail"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewInventoryService,
	wire.Bind(new(IInventoryService), new(*InventoryService)),

	NewProductService,
	wire.Bind(new(IProductService), new(*ProductService)),

	NewCartService,
	wire.Bind(new(ICartService), new(*CartService)),

	NewOrderService,
	wire.Bind(new(IOrderService), new(*OrderService)),

	NewCheckoutService,
	wire.Bind(new(ICheckoutService), new(*CheckoutService)),

	NewServiceRequestService,
	wire.Bind(new(IServiceRequestService), new(*ServiceRequestService)),

	NewAdvertService,
	wire.Bind(new(IAdvertService), new(*AdvertService)),

	NewDashboardService,
	wire.Bind(new(IDashboardService), new(*DashboardService)),

	NewNotifier,
	wire.Bind(new(INotifier), new(*Notifier)),

	NewRazorpayGateway,
	wire.Bind(new(PaymentGateway), new(*RazorpayGateway)),

	wire.Bind(new(SessionStore), new(*cache.Session)),

	mail.NewSMTPMailer,
	wire.Bind(new(mail.Mailer), new(*mail.SMTPMailer)),
)
