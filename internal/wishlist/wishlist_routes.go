package wishlist

import (
	"go-venusa-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("wishlists")
	wishlists.Use(middleware.OptionalAuthMiddleware(), middleware.ProfileMiddleware())
	{
		wishlists.GET("/items", handler.List)
		wishlists.DELETE("", handler.Clear)

		itemLimit := middleware.RateLimitByProfile(2, 5)

		wishlists.POST("/items/:slug", itemLimit, handler.Add)
		wishlists.POST("/items/:slug/toggle", itemLimit, handler.Toggle)
		wishlists.DELETE("/items/:slug", itemLimit, handler.Remove)
	}
}
