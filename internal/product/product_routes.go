package product

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("products")
	{
		products.GET("", handler.List)
		products.GET("/:slug", handler.Detail)
	}
}
