package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-venusa-api/internal/payment"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	secret := "whsec_test"

	assert.True(t, payment.VerifyWebhookSignature(body, sign(body, secret), secret))

	t.Run("wrong_secret", func(t *testing.T) {
		assert.False(t, payment.VerifyWebhookSignature(body, sign(body, "other"), secret))
	})

	t.Run("tampered_body", func(t *testing.T) {
		sig := sign(body, secret)
		assert.False(t, payment.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), sig, secret))
	})

	t.Run("empty_signature", func(t *testing.T) {
		assert.False(t, payment.VerifyWebhookSignature(body, "", secret))
	})

	t.Run("empty_secret", func(t *testing.T) {
		assert.False(t, payment.VerifyWebhookSignature(body, sign(body, secret), ""))
	})
}
