package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-venusa-api/internal/email"
)

type orderPaidPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Email       string `json:"email"`
	TotalPaise  int64  `json:"total_paise"`
	PaymentID   string `json:"payment_id"`
}

func handleOrderPaid(ctx context.Context, payload []byte, emailSvc email.Service) error {
	var data orderPaidPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Sending confirmation for order: %s", data.OrderNumber)

	if err := emailSvc.SendOrderConfirmation(ctx, data.Email, data.OrderNumber, data.TotalPaise); err != nil {
		return err
	}

	return nil
}
