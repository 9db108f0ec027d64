package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the profile endpoints. The auth middleware is
// built by the auth feature and injected to avoid a package cycle.
func RegisterRoutes(router *gin.RouterGroup, repo *Repository, authMiddleware gin.HandlerFunc) {
	handler := NewHandler(repo)

	users := router.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("", handler.ListProfiles)
		users.PATCH("/me", handler.UpdateProfile)
		users.GET("/me/blocks", handler.GetBlockedUsers)
		users.GET("/:id", handler.GetProfile)
		users.POST("/:id/block", handler.BlockUser)
		users.DELETE("/:id/block", handler.UnblockUser)
	}
}
