package dao

import (
	"context"
	"errors"
	"time"

	"smarttech/models"

	"gorm.io/gorm"
)

type Order struct {
	*Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Repo: NewRepo[models.Order](db)}
}

// FindByOrderSn 按订单号查询
func (d *Order) FindByOrderSn(ctx context.Context, orderSn string) (*models.Order, error) {
	return d.FindByWhere(ctx, "order_sn = ?", orderSn)
}

// FindByRazorpayOrderID 按网关订单号查询，回调重放时定位已建订单
func (d *Order) FindByRazorpayOrderID(ctx context.Context, gatewayOrderID string) (*models.Order, error) {
	return d.FindByWhere(ctx, "razorpay_order_id = ?", gatewayOrderID)
}

// CreateIfAbsent 幂等创建：订单号已存在则返回已有记录，inserted=false
func (d *Order) CreateIfAbsent(tx *gorm.DB, order *models.Order) (inserted bool, err error) {
	var existing models.Order
	err = tx.Where("order_sn = ?", order.OrderSn).First(&existing).Error
	if err == nil {
		*order = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(order).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser 用户订单列表，按下单时间倒序
func (d *Order) ListByUser(ctx context.Context, email string) ([]*models.Order, error) {
	var items []*models.Order
	err := d.Model(ctx).
		Where("user_email = ?", email).
		Order("order_date DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll 后台订单列表
func (d *Order) ListAll(ctx context.Context, status string) ([]*models.Order, error) {
	db := d.Model(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var items []*models.Order
	if err := db.Order("order_date DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus 状态流转，携带支付方式回写
func (d *Order) UpdateStatus(ctx context.Context, orderSn string, updates map[string]any) (int64, error) {
	return d.UpdateByWhere(ctx, updates, "order_sn = ?", orderSn)
}

// ListPaidSince 已支付订单，供报表按月聚合
func (d *Order) ListPaidSince(ctx context.Context, since time.Time) ([]*models.Order, error) {
	var items []*models.Order
	err := d.Model(ctx).
		Where("status = ? AND order_date >= ?", models.OrderStatusPaid, since).
		Order("order_date").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
