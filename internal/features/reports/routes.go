package reports

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/pkg/ratelimit"
)

// RegisterRoutes mounts the moderation endpoints. Submission is
// rate-limited per user to keep report spam down; the admin endpoints
// are additionally gated by requireAdmin at the transport layer (the
// service re-checks the role itself).
func RegisterRoutes(router *gin.RouterGroup, service *Service, authMiddleware, requireAdmin gin.HandlerFunc) {
	handler := NewHandler(service)

	submitLimiter := ratelimit.New(5, time.Minute)
	submitLimiter.StartCleanup(10 * time.Minute)

	reports := router.Group("/reports")
	reports.Use(authMiddleware)
	{
		reports.POST("", ratelimit.UserBasedMiddleware(submitLimiter), handler.CreateReport)
		reports.GET("", requireAdmin, handler.ListReports)
		reports.PATCH("/:id/status", requireAdmin, handler.UpdateReportStatus)
	}
}
