package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, cld *cloudinary.Service, repo *users.Repository, authMiddleware gin.HandlerFunc) {
	handler := NewHandler(cld, repo)

	media := router.Group("/media")
	media.Use(authMiddleware)
	{
		media.POST("/profile-photo", handler.UploadProfilePhoto)
	}
}
