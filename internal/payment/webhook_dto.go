package payment

const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

type WebhookEvent struct {
	Event     string         `json:"event"`
	CreatedAt int64          `json:"created_at"`
	Payload   webhookPayload `json:"payload"`
}

type webhookPayload struct {
	Payment struct {
		Entity PaymentEntity `json:"entity"`
	} `json:"payment"`
}

type PaymentEntity struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
