package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const profileCookie = "profile_id"

// ProfileMiddleware resolves the profile that owns cart/wishlist state: the
// authenticated user when present, otherwise a guest id minted into a cookie
// on first touch. Must run after OptionalAuthMiddleware.
func ProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetString("user_id"); userID != "" {
			c.Set("profile_id", userID)
			c.Next()
			return
		}

		if id, err := c.Cookie(profileCookie); err == nil && id != "" {
			c.Set("profile_id", id)
			c.Next()
			return
		}

		id := uuid.NewString()
		c.SetCookie(profileCookie, id, 60*60*24*365, "/", "", false, true)
		c.Set("profile_id", id)
		c.Next()
	}
}
