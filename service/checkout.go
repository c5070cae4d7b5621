package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smarttech/config"
	"smarttech/dao"
	"smarttech/dao/cache"
	"smarttech/middleware"
	"smarttech/models"
	"smarttech/pkg/upi"
	"smarttech/pkg/utils"
	"smarttech/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionStore 网关预下单上下文的暂存，redis 实现见 dao/cache
type SessionStore interface {
	Save(ctx context.Context, gatewayOrderID string, sess *types.CheckoutSession) error
	Load(ctx context.Context, gatewayOrderID string) (*types.CheckoutSession, error)
	Delete(ctx context.Context, gatewayOrderID string) error
}

type ICheckoutService interface {
	Quote(ctx context.Context, req *types.QuoteReq) (*types.QuoteResp, error)
	// Place COD/UPI 直接下单，建单与扣库存在同一事务
	Place(ctx context.Context, email string, req *types.CheckoutReq) (*types.PlaceOrderResp, error)
	UpiIntent(ctx context.Context, req *types.QuoteReq) (*types.UpiIntentResp, error)
	InitiateGateway(ctx context.Context, email string, req *types.GatewayInitiateReq) (*types.GatewayInitiateResp, error)
	ConfirmGateway(ctx context.Context, req *types.GatewayConfirmReq) (*types.PlaceOrderResp, error)
}

type CheckoutService struct {
	ProductDao *dao.Product
	OrderDao   *dao.Order
	CartDao    *dao.Cart
	Inventory  IInventoryService
	Gateway    PaymentGateway
	Sessions   SessionStore
	Notifier   INotifier
	Catalog    *cache.Catalog
	RzpConf    *config.RazorpayConfig
	UpiConf    *config.UpiConfig

	strategies map[string]PaymentStrategy
}

var _ ICheckoutService = (*CheckoutService)(nil)

func NewCheckoutService(
	productDao *dao.Product,
	orderDao *dao.Order,
	cartDao *dao.Cart,
	inventory IInventoryService,
	gateway PaymentGateway,
	sessions SessionStore,
	notifier INotifier,
	catalog *cache.Catalog,
	rzpConf *config.RazorpayConfig,
	upiConf *config.UpiConfig,
) *CheckoutService {
	return &CheckoutService{
		ProductDao: productDao,
		OrderDao:   orderDao,
		CartDao:    cartDao,
		Inventory:  inventory,
		Gateway:    gateway,
		Sessions:   sessions,
		Notifier:   notifier,
		Catalog:    catalog,
		RzpConf:    rzpConf,
		UpiConf:    upiConf,
		strategies: map[string]PaymentStrategy{
			models.PaymentMethodCOD: CODStrategy{},
			models.PaymentMethodUpi: UpiStrategy{},
		},
	}
}

// resolveLines 服务端解析价格与快照，客户端报价一律不信
func (s *CheckoutService) resolveLines(ctx context.Context, reqLines []types.CheckoutLine) ([]models.OrderLine, error) {
	lines := make([]models.OrderLine, 0, len(reqLines))
	for _, rl := range reqLines {
		product, err := s.ProductDao.FindById(ctx, rl.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		if product.HasVariants() && rl.SpecName == "" {
			return nil, ErrMissingVariantSelector
		}
		price, ok := product.EffectivePrice(rl.SpecName)
		if !ok {
			return nil, ErrUnknownVariant
		}

		available := product.Stock
		if product.HasVariants() {
			available = product.Variants[product.FindVariant(rl.SpecName)].Stock
		}
		if available < rl.Qty {
			return nil, ErrOutOfStock
		}

		line := models.OrderLine{
			ProductID: product.ID,
			Title:     product.Title,
			Category:  product.Category,
			SpecName:  rl.SpecName,
			UnitPrice: price,
			Qty:       rl.Qty,
		}
		if len(product.Images) > 0 {
			line.Image = product.Images[0]
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *CheckoutService) Quote(ctx context.Context, req *types.QuoteReq) (*types.QuoteResp, error) {
	lines, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	t := ComputeTotals(lines, req.PaymentMethod)
	return &types.QuoteResp{
		Subtotal:       t.Subtotal,
		GstAmount:      t.GstAmount,
		DeliveryCharge: t.DeliveryCharge,
		TotalAmount:    t.TotalAmount,
	}, nil
}

func (s *CheckoutService) Place(ctx context.Context, email string, req *types.CheckoutReq) (*types.PlaceOrderResp, error) {
	strategy, ok := s.strategies[req.PaymentMethod]
	if !ok {
		return nil, errors.New("不支持的支付方式")
	}
	if err := strategy.Validate(req); err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	t := ComputeTotals(lines, req.PaymentMethod)

	orderSn := req.OrderSn
	if orderSn == "" {
		orderSn = utils.GenerateOrderSn()
	}
	order := &models.Order{
		OrderSn:        orderSn,
		OrderDate:      time.Now(),
		UserEmail:      email,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		Subtotal:       t.Subtotal,
		GstAmount:      t.GstAmount,
		DeliveryCharge: t.DeliveryCharge,
		TotalAmount:    t.TotalAmount,
		Status:         models.OrderStatusPending,
		PaymentMethod:  req.PaymentMethod,
		ScreenshotPath: req.ScreenshotPath,
		Products:       lines,
	}

	if err := s.persistOrder(ctx, order, lines); err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx, lines)
	s.clearCartIfMatches(ctx, email, lines)
	s.Notifier.OrderConfirmed(order)
	middleware.CountOrderPlaced(order.PaymentMethod)

	return &types.PlaceOrderResp{
		OrderSn:     order.OrderSn,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	}, nil
}

// invalidateCatalog 扣减后清掉缓存里的旧库存
func (s *CheckoutService) invalidateCatalog(ctx context.Context, lines []models.OrderLine) {
	if s.Catalog == nil {
		return
	}
	for i := range lines {
		s.Catalog.Invalidate(ctx, lines[i].ProductID, lines[i].Category)
	}
}

// emailSummary 通知邮件用的订单摘要，随订单落库
func emailSummary(order *models.Order) datatypes.JSON {
	raw, err := json.Marshal(map[string]any{
		"products":         order.Products,
		"subtotal":         order.Subtotal,
		"gst":              order.GstAmount,
		"delivery":         order.DeliveryCharge,
		"total":            order.TotalAmount,
		"payment_method":   order.PaymentMethod,
		"shipping_address": order.Address,
	})
	if err != nil {
		return nil
	}
	return raw
}

// persistOrder 建单与扣库存同事务，重复订单号直接复用已有记录
func (s *CheckoutService) persistOrder(ctx context.Context, order *models.Order, lines []models.OrderLine) error {
	order.EmailSummary = emailSummary(order)
	return s.OrderDao.Txx(ctx, func(tx *gorm.DB) error {
		inserted, err := s.OrderDao.CreateIfAbsent(tx, order)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		return s.Inventory.DeductTx(tx, lines)
	})
}

func (s *CheckoutService) UpiIntent(ctx context.Context, req *types.QuoteReq) (*types.UpiIntentResp, error) {
	lines, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	t := ComputeTotals(lines, models.PaymentMethodUpi)
	orderSn := utils.GenerateOrderSn()
	uri := upi.BuildPayURI(s.UpiConf, orderSn, t.TotalAmount, orderSn)
	return &types.UpiIntentResp{
		OrderSn: orderSn,
		PayURI:  uri,
		Amount:  t.TotalAmount,
	}, nil
}

func (s *CheckoutService) InitiateGateway(ctx context.Context, email string, req *types.GatewayInitiateReq) (*types.GatewayInitiateResp, error) {
	lines, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	t := ComputeTotals(lines, models.PaymentMethodOnline)

	orderSn := utils.GenerateOrderSn()
	gatewayOrderID, err := s.Gateway.CreateOrder(t.TotalAmount, s.RzpConf.Currency, orderSn)
	if err != nil {
		return nil, err
	}

	sess := &types.CheckoutSession{
		OrderSn:        orderSn,
		UserEmail:      email,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		Lines:          lines,
		Subtotal:       t.Subtotal,
		GstAmount:      t.GstAmount,
		DeliveryCharge: t.DeliveryCharge,
		TotalAmount:    t.TotalAmount,
	}
	if err := s.Sessions.Save(ctx, gatewayOrderID, sess); err != nil {
		return nil, err
	}

	return &types.GatewayInitiateResp{
		GatewayOrderID: gatewayOrderID,
		KeyID:          s.RzpConf.KeyID,
		Amount:         t.TotalAmount,
		Currency:       s.RzpConf.Currency,
	}, nil
}

func (s *CheckoutService) ConfirmGateway(ctx context.Context, req *types.GatewayConfirmReq) (*types.PlaceOrderResp, error) {
	if !VerifyGatewaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.RzpConf.KeySecret) {
		return nil, ErrInvalidSignature
	}

	sess, err := s.Sessions.Load(ctx, req.RazorpayOrderID)
	if err != nil {
		// 会话已被首次确认消费，重放回调直接返回已建订单
		if order, lookupErr := s.OrderDao.FindByRazorpayOrderID(ctx, req.RazorpayOrderID); lookupErr == nil {
			return &types.PlaceOrderResp{
				OrderSn:     order.OrderSn,
				Status:      order.Status,
				TotalAmount: order.TotalAmount,
			}, nil
		}
		return nil, ErrSessionExpired
	}

	order := &models.Order{
		OrderSn:           sess.OrderSn,
		OrderDate:         time.Now(),
		UserEmail:         sess.UserEmail,
		CustomerName:      sess.CustomerName,
		Phone:             sess.Phone,
		Address:           sess.Address,
		Subtotal:          sess.Subtotal,
		GstAmount:         sess.GstAmount,
		DeliveryCharge:    sess.DeliveryCharge,
		TotalAmount:       sess.TotalAmount,
		Status:            models.OrderStatusPending,
		PaymentMethod:     models.PaymentMethodOnline,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Products:          sess.Lines,
	}

	if err := s.persistOrder(ctx, order, sess.Lines); err != nil {
		return nil, err
	}
	_ = s.Sessions.Delete(ctx, req.RazorpayOrderID)

	s.invalidateCatalog(ctx, sess.Lines)
	s.clearCartIfMatches(ctx, sess.UserEmail, sess.Lines)
	s.Notifier.OrderConfirmed(order)
	middleware.CountOrderPlaced(order.PaymentMethod)

	return &types.PlaceOrderResp{
		OrderSn:     order.OrderSn,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	}, nil
}

// clearCartIfMatches 下单行与购物车完全一致才清空，立即购买不动购物车
func (s *CheckoutService) clearCartIfMatches(ctx context.Context, email string, lines []models.OrderLine) {
	cartLines, err := s.CartDao.ListByOwner(ctx, email)
	if err != nil || len(cartLines) != len(lines) {
		return
	}

	type lineKey struct {
		productID int64
		spec      string
	}
	inCart := make(map[lineKey]int, len(cartLines))
	for _, cl := range cartLines {
		inCart[lineKey{cl.ProductID, cl.SpecName}] = cl.Qty
	}
	for i := range lines {
		if inCart[lineKey{lines[i].ProductID, lines[i].SpecName}] != lines[i].Qty {
			return
		}
	}

	_ = s.CartDao.Clear(ctx, email)
}
