package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"smarttech/models"
	"smarttech/types"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.CartItem{},
		&models.ServiceRequest{},
		&models.Advertisement{},
	))
	return db
}

func seedSimpleProduct(t *testing.T, db *gorm.DB, price int64, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Title:    "Boat Airdopes",
		Category: models.CategoryAccessories,
		Price:    price,
		Stock:    stock,
		Images:   []string{"/uploads/airdopes.jpg"},
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedVariantProduct(t *testing.T, db *gorm.DB, variants []models.Variant) *models.Product {
	t.Helper()
	p := &models.Product{
		Title:    "Galaxy S24",
		Category: models.CategoryMobiles,
		Variants: variants,
	}
	p.Stock = p.AggregateStock()
	p.Price = variants[0].Price
	require.NoError(t, db.Create(p).Error)
	return p
}

// fakeGateway 记录预下单调用
type fakeGateway struct {
	mu      sync.Mutex
	calls   int
	fail    bool
	orderID string
}

func (g *fakeGateway) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.fail {
		return "", ErrGatewayUnavailable
	}
	if g.orderID == "" {
		g.orderID = fmt.Sprintf("rzp_order_%d", g.calls)
	}
	return g.orderID, nil
}

// fakeSessions 内存版会话存储
type fakeSessions struct {
	mu    sync.Mutex
	items map[string]*types.CheckoutSession
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{items: map[string]*types.CheckoutSession{}}
}

func (s *fakeSessions) Save(_ context.Context, id string, sess *types.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = sess
	return nil
}

func (s *fakeSessions) Load(_ context.Context, id string) (*types.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return sess, nil
}

func (s *fakeSessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// stubNotifier 记录通知调用
type stubNotifier struct {
	mu        sync.Mutex
	confirmed []string
	changed   []string
}

func (n *stubNotifier) OrderConfirmed(order *models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, order.OrderSn)
}

func (n *stubNotifier) StatusChanged(order *models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, order.OrderSn+":"+order.Status)
}

func (n *stubNotifier) Wait() {}

// fakeMailer 记录发信
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}
