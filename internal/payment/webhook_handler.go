package payment

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-venusa-api/internal/order"
	"go-venusa-api/internal/pkg/apperror"
	"go-venusa-api/internal/pkg/response"
)

const signatureHeader = "X-Razorpay-Signature"

type WebhookHandler struct {
	orders order.Service
	logger *zap.Logger

	// overridable in tests
	secret func() string
}

func NewWebhookHandler(orders order.Service, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		orders: orders,
		logger: logger,
		secret: func() string { return os.Getenv("RAZORPAY_WEBHOOK_SECRET") },
	}
}

// Handle verifies the gateway signature over the raw body and applies the
// event to the matching order. Once the signature checks out the endpoint
// always answers 200: the gateway retries on anything else, and a
// processing hiccup is ours to recover, not theirs to redeliver forever.
func (h *WebhookHandler) Handle(c *gin.Context) {
	secret := h.secret()
	if secret == "" {
		h.logger.Error("webhook secret is not configured")
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "webhook is not configured", nil)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "unreadable body", nil)
		return
	}

	if !VerifyWebhookSignature(body, c.GetHeader(signatureHeader), secret) {
		h.logger.Warn("webhook signature mismatch")
		response.Error(c, http.StatusBadRequest, apperror.CodeUnauthorized, "invalid signature", nil)
		return
	}

	var evt WebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		h.logger.Error("webhook payload unmarshal failed", zap.Error(err))
		response.Success(c, http.StatusOK, gin.H{"received": true}, nil)
		return
	}

	ctx := c.Request.Context()
	entity := evt.Payload.Payment.Entity
	eventAt := time.Unix(evt.CreatedAt, 0)

	switch evt.Event {
	case EventPaymentCaptured:
		err = h.orders.ApplyPaymentCaptured(ctx, entity.OrderID, entity.ID, c.GetHeader(signatureHeader), eventAt)
	case EventPaymentFailed:
		err = h.orders.ApplyPaymentFailed(ctx, entity.OrderID, entity.ID, eventAt)
	default:
		h.logger.Debug("ignoring webhook event", zap.String("event", evt.Event))
	}
	if err != nil {
		h.logger.Error("webhook event processing failed",
			zap.String("event", evt.Event),
			zap.String("gateway_order_id", entity.OrderID),
			zap.Error(err),
		)
	}

	response.Success(c, http.StatusOK, gin.H{"received": true}, nil)
}
