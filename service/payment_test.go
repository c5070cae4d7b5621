package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"smarttech/types"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyGatewaySignature(t *testing.T) {
	secret := "test-secret"
	sig := signPayload("rzp_order_1", "pay_1", secret)

	assert.True(t, VerifyGatewaySignature("rzp_order_1", "pay_1", sig, secret))
	assert.False(t, VerifyGatewaySignature("rzp_order_1", "pay_1", sig, "wrong-secret"))
	assert.False(t, VerifyGatewaySignature("rzp_order_2", "pay_1", sig, secret))
	assert.False(t, VerifyGatewaySignature("rzp_order_1", "pay_1", "deadbeef", secret))
}

func TestUpiStrategyRequiresScreenshot(t *testing.T) {
	s := UpiStrategy{}
	err := s.Validate(&types.CheckoutReq{})
	assert.ErrorIs(t, err, ErrMissingEvidence)

	err = s.Validate(&types.CheckoutReq{ScreenshotPath: "/uploads/pay.png"})
	assert.NoError(t, err)
}

func TestCODStrategyNoRequirements(t *testing.T) {
	s := CODStrategy{}
	assert.NoError(t, s.Validate(&types.CheckoutReq{}))
}
