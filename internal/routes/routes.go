package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/xyz-asif/voluntra/internal/config"
	"github.com/xyz-asif/voluntra/internal/features/auth"
	"github.com/xyz-asif/voluntra/internal/features/media"
	"github.com/xyz-asif/voluntra/internal/features/notifications"
	"github.com/xyz-asif/voluntra/internal/features/reports"
	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/pkg/cloudinary"
	"github.com/xyz-asif/voluntra/internal/store"
)

// SetupRoutes builds the shared dependencies once and registers every
// feature under /api/v1.
func SetupRoutes(router *gin.Engine, st *store.Store, cfg *config.Config) {
	usersRepo := users.NewRepository(st)
	notificationsService := notifications.NewService(st)
	reportsService := reports.NewService(st, usersRepo, notificationsService)

	authMiddleware := auth.Middleware(usersRepo, cfg)
	requireAdmin := auth.RequireAdmin(usersRepo)

	cloudinarySvc, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "voluntra")
	if err != nil {
		// Uploads stay disabled; everything else keeps working.
		log.Warn().Err(err).Msg("cloudinary unavailable, media uploads disabled")
		cloudinarySvc = nil
	}

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, usersRepo, cfg, authMiddleware)
		users.RegisterRoutes(v1, usersRepo, authMiddleware)
		reports.RegisterRoutes(v1, reportsService, authMiddleware, requireAdmin)
		notifications.RegisterRoutes(v1, notificationsService, authMiddleware, requireAdmin)
		media.RegisterRoutes(v1, cloudinarySvc, usersRepo, authMiddleware)
	}
}
