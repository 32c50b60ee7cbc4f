package payment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, webhook *WebhookHandler) {
	payments := r.Group("payments")
	{
		payments.POST("/webhook", webhook.Handle)
	}
}
