package payment

import (
	"context"
	"fmt"
	"net/http"
	"os"

	razorpay "github.com/razorpay/razorpay-go"

	"go-venusa-api/internal/pkg/apperror"
)

type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway creates payment orders with the upstream provider. Amounts are
// in minor units (paise for INR).
//
//go:generate mockgen -source=gateway.go -destination=../mock/payment/gateway_mock.go -package=mock
type Gateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*GatewayOrder, error)
}

type razorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayGateway() (Gateway, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}
	return &razorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}, nil
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUpstreamError, "payment gateway rejected the order", http.StatusBadGateway)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, apperror.New(apperror.CodeUpstreamError, "payment gateway returned no order id", http.StatusBadGateway)
	}
	return &GatewayOrder{
		ID:       id,
		Amount:   amountPaise,
		Currency: currency,
	}, nil
}
