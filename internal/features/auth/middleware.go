package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/config"
	"github.com/xyz-asif/voluntra/internal/features/users"
	idToken "github.com/xyz-asif/voluntra/internal/pkg/jwt"
	"github.com/xyz-asif/voluntra/internal/pkg/response"
)

// Middleware validates the bearer token and loads the caller's profile
// into the gin context under "user" (and the id under "userID").
func Middleware(repo *users.Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		claims, err := idToken.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		user, err := repo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "User not found", "USER_NOT_FOUND")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// RequireAdmin gates a route on the admin role. It rechecks the stored
// profile rather than trusting the token claim, so a revoked admin loses
// access as soon as their profile changes.
func RequireAdmin(repo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" || !repo.VerifyAdmin(c.Request.Context(), userID) {
			response.Forbidden(c, "Admin role required", "ADMIN_REQUIRED")
			c.Abort()
			return
		}
		c.Next()
	}
}
