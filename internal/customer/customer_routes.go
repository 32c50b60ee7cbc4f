package customer

import (
	"go-venusa-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.GET("/me", middleware.RateLimitByUser(5, 10), handler.GetProfile)
		customers.PUT("/me", middleware.RateLimitByUser(1, 3), handler.UpdateProfile)
		customers.POST("/me/avatar", middleware.RateLimitByUser(0.2, 2), handler.UploadAvatar)
	}
}
