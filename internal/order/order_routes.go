package order

import (
	"go-venusa-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("orders")
	orders.Use(middleware.OptionalAuthMiddleware(), middleware.ProfileMiddleware())
	{
		orders.GET("", handler.List)
		orders.GET("/:id", handler.Detail)
	}
}
