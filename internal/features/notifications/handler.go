package notifications

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/pkg/response"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListNotifications godoc
// @Summary List the caller's notifications
// @Description Most recent first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	list, err := h.service.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to load notifications", "STORAGE_ERROR")
		return
	}

	response.Success(c, list)
}

// GetUnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=UnreadCountResponse}
// @Router /notifications/unread-count [get]
func (h *Handler) GetUnreadCount(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	count, err := h.service.CountUnread(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to count notifications", "STORAGE_ERROR")
		return
	}

	response.Success(c, UnreadCountResponse{UnreadCount: count})
}

// MarkAsRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (h *Handler) MarkAsRead(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	notification, err := h.service.MarkRead(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Notification not found", "NOTIFICATION_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to update notification", "STORAGE_ERROR")
		return
	}

	response.Success(c, notification)
}

// MarkAllAsRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=MarkAllReadResponse}
// @Router /notifications/read-all [patch]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	count, err := h.service.MarkAllRead(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to update notifications", "STORAGE_ERROR")
		return
	}

	response.Success(c, MarkAllReadResponse{MarkedCount: count})
}

// CreateNotification godoc
// @Summary Create a notification for a user
// @Description Admin tooling for announcements and moderation follow-ups
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNotificationRequest true "Notification details"
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /notifications [post]
func (h *Handler) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	notification, err := h.service.Create(c.Request.Context(), req.UserID, req.Message, req.Link)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			response.BadRequest(c, "userId and message are required", "VALIDATION_FAILED")
			return
		}
		response.InternalServerError(c, "Failed to create notification", "STORAGE_ERROR")
		return
	}

	response.Created(c, notification)
}
