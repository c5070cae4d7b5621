package cache

import (
	"context"
	"encoding/json"
	"time"

	"smarttech/types"

	"github.com/redis/go-redis/v9"
)

// 网关会话保留时长，收银台超时未回调则作废
const sessionTTL = 30 * time.Minute

// Session 网关下单上下文，回调确认时取回
type Session struct {
	rds *redis.Client
}

func NewSession(rds *redis.Client) *Session {
	return &Session{rds: rds}
}

func (s *Session) Save(ctx context.Context, gatewayOrderID string, sess *types.CheckoutSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rds.Set(ctx, CheckoutSessionKey(gatewayOrderID), raw, sessionTTL).Err()
}

func (s *Session) Load(ctx context.Context, gatewayOrderID string) (*types.CheckoutSession, error) {
	raw, err := s.rds.Get(ctx, CheckoutSessionKey(gatewayOrderID)).Bytes()
	if err != nil {
		return nil, err
	}

	var sess types.CheckoutSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Session) Delete(ctx context.Context, gatewayOrderID string) error {
	return s.rds.Del(ctx, CheckoutSessionKey(gatewayOrderID)).Err()
}
