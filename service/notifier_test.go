package service

import (
	"testing"

	"smarttech/config"
	"smarttech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifier(mailer *fakeMailer) *Notifier {
	return NewNotifier(mailer, &config.Config{
		App: &config.App{ShopName: "SmartTech"},
	})
}

func sampleOrder(status string) *models.Order {
	return &models.Order{
		OrderSn:        "order_n1",
		UserEmail:      testEmail,
		Status:         status,
		PaymentMethod:  models.PaymentMethodCOD,
		Subtotal:       100000,
		GstAmount:      5000,
		DeliveryCharge: 4000,
		TotalAmount:    109000,
		Address:        "12 MG Road, Bengaluru",
		Products: []models.OrderLine{
			{Title: "Boat Airdopes", UnitPrice: 100000, Qty: 1},
		},
	}
}

func TestNotifierOrderConfirmed(t *testing.T) {
	mailer := &fakeMailer{}
	n := newNotifier(mailer)

	n.OrderConfirmed(sampleOrder(models.OrderStatusPending))
	n.Wait()

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0], testEmail)
	assert.Contains(t, mailer.sent[0], "order_n1")
}

func TestNotifierStatusChangedFilter(t *testing.T) {
	mailer := &fakeMailer{}
	n := newNotifier(mailer)

	// Pending 不通知
	n.StatusChanged(sampleOrder(models.OrderStatusPending))
	n.Wait()
	assert.Empty(t, mailer.sent)

	for _, status := range []string{
		models.OrderStatusPaid,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		n.StatusChanged(sampleOrder(status))
	}
	n.Wait()
	assert.Len(t, mailer.sent, 4)
}

func TestNotifierSendFailureSwallowed(t *testing.T) {
	mailer := &fakeMailer{fail: true}
	n := newNotifier(mailer)

	// 发信失败不 panic 不向上传播
	n.OrderConfirmed(sampleOrder(models.OrderStatusPending))
	n.Wait()
	assert.Empty(t, mailer.sent)
}

func TestNotifierSummaryContent(t *testing.T) {
	n := newNotifier(&fakeMailer{})
	body := n.buildSummary(sampleOrder(models.OrderStatusPending))

	assert.Contains(t, body, "Boat Airdopes")
	assert.Contains(t, body, "₹1000.00")
	assert.Contains(t, body, "₹1090.00")
	assert.Contains(t, body, "12 MG Road, Bengaluru")
}
