package notifications

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the notification endpoints. Creation is admin
// tooling; everything else operates on the caller's own notifications.
// The service is built by the caller so other features can share it.
func RegisterRoutes(router *gin.RouterGroup, service *Service, authMiddleware, requireAdmin gin.HandlerFunc) {
	handler := NewHandler(service)

	notifications := router.Group("/notifications")
	notifications.Use(authMiddleware)
	{
		notifications.GET("", handler.ListNotifications)
		notifications.GET("/unread-count", handler.GetUnreadCount)
		notifications.PATCH("/:id/read", handler.MarkAsRead)
		notifications.PATCH("/read-all", handler.MarkAllAsRead)
		notifications.POST("", requireAdmin, handler.CreateNotification)
	}
}
