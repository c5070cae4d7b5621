package service

import (
	"context"
	"errors"

	"smarttech/dao"
	"smarttech/models"

	"gorm.io/gorm"
)

type IOrderService interface {
	Detail(ctx context.Context, orderSn string) (*models.Order, error)
	ListByUser(ctx context.Context, email string) ([]*models.Order, error)
	ListAll(ctx context.Context, status string) ([]*models.Order, error)
	// UpdateStatus 后台状态流转，非法跳转拒绝
	UpdateStatus(ctx context.Context, orderSn, newStatus string) (*models.Order, error)
	Remove(ctx context.Context, orderSn string) error
}

type OrderService struct {
	OrderDao *dao.Order
	Notifier INotifier
}

var _ IOrderService = (*OrderService)(nil)

func NewOrderService(orderDao *dao.Order, notifier INotifier) *OrderService {
	return &OrderService{OrderDao: orderDao, Notifier: notifier}
}

// 允许的状态流转，取消不回补库存
var statusTransitions = map[string][]string{
	models.OrderStatusPending: {models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusPaid:    {models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusDelivered, models.OrderStatusCancelled},
}

func canTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *OrderService) Detail(ctx context.Context, orderSn string) (*models.Order, error) {
	order, err := s.OrderDao.FindByOrderSn(ctx, orderSn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, email string) ([]*models.Order, error) {
	return s.OrderDao.ListByUser(ctx, email)
}

func (s *OrderService) ListAll(ctx context.Context, status string) ([]*models.Order, error) {
	return s.OrderDao.ListAll(ctx, status)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderSn, newStatus string) (*models.Order, error) {
	order, err := s.Detail(ctx, orderSn)
	if err != nil {
		return nil, err
	}
	if !canTransition(order.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	updates := map[string]any{"status": newStatus}
	// 货到付款妥投即视为收款完成
	if newStatus == models.OrderStatusDelivered && order.PaymentMethod == models.PaymentMethodCOD {
		updates["payment_method"] = models.PaymentMethodCODPaid
	}

	rows, err := s.OrderDao.UpdateStatus(ctx, orderSn, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	order.Status = newStatus
	if pm, ok := updates["payment_method"]; ok {
		order.PaymentMethod = pm.(string)
	}
	s.Notifier.StatusChanged(order)
	return order, nil
}

func (s *OrderService) Remove(ctx context.Context, orderSn string) error {
	order, err := s.Detail(ctx, orderSn)
	if err != nil {
		return err
	}
	return s.OrderDao.DeleteById(ctx, order.ID)
}
