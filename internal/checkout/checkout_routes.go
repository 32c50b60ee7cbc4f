package checkout

import (
	"go-venusa-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("checkout")
	co.Use(middleware.OptionalAuthMiddleware(), middleware.ProfileMiddleware())
	{
		limit := middleware.RateLimitByProfile(1, 3)

		co.POST("", limit, handler.Start)
		co.POST("/confirm", limit, handler.Confirm)
	}
}
