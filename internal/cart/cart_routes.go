package cart

import (
	"go-venusa-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("carts")
	carts.Use(middleware.OptionalAuthMiddleware(), middleware.ProfileMiddleware())
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		// Item mutations are throttled: they fire on every click of the
		// +/- controls.
		itemLimit := middleware.RateLimitByProfile(5, 10)

		carts.POST("/items", itemLimit, handler.AddItem)
		carts.PUT("/items/:slug", itemLimit, handler.UpdateQty)
		carts.POST("/items/:slug/increment", itemLimit, handler.Increment)
		carts.POST("/items/:slug/decrement", itemLimit, handler.Decrement)
		carts.DELETE("/items/:slug", itemLimit, handler.DeleteItem)
	}
}
