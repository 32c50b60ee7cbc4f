package auth

import (
	"go-venusa-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// register and login are throttled per IP, they are the brute
		// force targets
		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)
		auth.POST("/refresh",
			middleware.RateLimitByIP(0.5, 2),
			handler.RefreshToken,
		)

		auth.POST("/password-reset/request",
			middleware.RateLimitByIP(0.05, 1),
			handler.RequestPasswordReset,
		)
		auth.POST("/password-reset",
			middleware.RateLimitByIP(0.1, 2),
			handler.ResetPassword,
		)

		authenticated := auth.Group("/")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)
			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
		}
	}
}
