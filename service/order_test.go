package service

import (
	"context"
	"testing"
	"time"

	"smarttech/dao"
	"smarttech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, orderSn, status, method string) *models.Order {
	t.Helper()
	o := &models.Order{
		OrderSn:       orderSn,
		OrderDate:     time.Now(),
		UserEmail:     testEmail,
		CustomerName:  "Ravi Kumar",
		Subtotal:      100000,
		GstAmount:     5000,
		TotalAmount:   105000,
		Status:        status,
		PaymentMethod: method,
		Products: []models.OrderLine{
			{ProductID: 1, Title: "Boat Airdopes", Category: models.CategoryAccessories, UnitPrice: 100000, Qty: 1},
		},
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func newOrderEnv(t *testing.T) (*gorm.DB, *OrderService, *stubNotifier) {
	t.Helper()
	db := newTestDB(t)
	notifier := &stubNotifier{}
	return db, NewOrderService(dao.NewOrder(db), notifier), notifier
}

func TestUpdateStatusPendingToPaid(t *testing.T) {
	db, svc, notifier := newOrderEnv(t)
	seedOrder(t, db, "order_1", models.OrderStatusPending, models.PaymentMethodOnline)

	order, err := svc.UpdateStatus(context.Background(), "order_1", models.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Contains(t, notifier.changed, "order_1:Paid")

	var got models.Order
	require.NoError(t, db.Where("order_sn = ?", "order_1").First(&got).Error)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
}

func TestUpdateStatusCODDeliveredMarksPaid(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	seedOrder(t, db, "order_2", models.OrderStatusPending, models.PaymentMethodCOD)

	order, err := svc.UpdateStatus(context.Background(), "order_2", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCODPaid, order.PaymentMethod)

	var got models.Order
	require.NoError(t, db.Where("order_sn = ?", "order_2").First(&got).Error)
	assert.Equal(t, models.PaymentMethodCODPaid, got.PaymentMethod)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
}

func TestUpdateStatusOnlineDeliveredKeepsMethod(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	seedOrder(t, db, "order_3", models.OrderStatusPaid, models.PaymentMethodOnline)

	order, err := svc.UpdateStatus(context.Background(), "order_3", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodOnline, order.PaymentMethod)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	seedOrder(t, db, "order_4", models.OrderStatusDelivered, models.PaymentMethodOnline)

	_, err := svc.UpdateStatus(context.Background(), "order_4", models.OrderStatusPaid)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	db2, svc2, _ := newOrderEnv(t)
	seedOrder(t, db2, "order_5", models.OrderStatusCancelled, models.PaymentMethodCOD)
	_, err = svc2.UpdateStatus(context.Background(), "order_5", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCancelDoesNotRestock(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	p := seedSimpleProduct(t, db, 100000, 2)
	seedOrder(t, db, "order_6", models.OrderStatusPending, models.PaymentMethodCOD)

	_, err := svc.UpdateStatus(context.Background(), "order_6", models.OrderStatusCancelled)
	require.NoError(t, err)

	// 取消不回补库存
	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 2, got.Stock)
}

func TestUpdateStatusNotFound(t *testing.T) {
	_, svc, _ := newOrderEnv(t)
	_, err := svc.UpdateStatus(context.Background(), "order_missing", models.OrderStatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUser(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	seedOrder(t, db, "order_7", models.OrderStatusPending, models.PaymentMethodCOD)
	other := seedOrder(t, db, "order_8", models.OrderStatusPaid, models.PaymentMethodOnline)
	require.NoError(t, db.Model(other).Update("user_email", "someone@else.com").Error)

	items, err := svc.ListByUser(context.Background(), testEmail)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "order_7", items[0].OrderSn)
}

func TestListAllFilterByStatus(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	seedOrder(t, db, "order_9", models.OrderStatusPending, models.PaymentMethodCOD)
	seedOrder(t, db, "order_10", models.OrderStatusPaid, models.PaymentMethodOnline)

	items, err := svc.ListAll(context.Background(), models.OrderStatusPaid)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "order_10", items[0].OrderSn)

	all, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRemoveOrder(t *testing.T) {
	db, svc, _ := newOrderEnv(t)
	seedOrder(t, db, "order_11", models.OrderStatusCancelled, models.PaymentMethodCOD)

	require.NoError(t, svc.Remove(context.Background(), "order_11"))
	assert.Equal(t, int64(0), countOrders(t, db))

	err := svc.Remove(context.Background(), "order_11")
	assert.ErrorIs(t, err, ErrNotFound)
}
