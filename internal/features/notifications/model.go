package notifications

import (
	"github.com/xyz-asif/voluntra/internal/store"
)

// CollectionName is the store document holding all notifications
const CollectionName = "notifications"

// Notification represents a message delivered to a single user
type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Message   string     `json:"message"`
	Link      string     `json:"link,omitempty"`
	IsRead    bool       `json:"isRead"`
	Timestamp store.Time `json:"timestamp"`
}

// CreateNotificationRequest represents the payload for creating a
// notification on behalf of another user (admin tooling)
type CreateNotificationRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required,max=500"`
	Link    string `json:"link" binding:"omitempty,url"`
}

// UnreadCountResponse is the body of the unread-count endpoint
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// MarkAllReadResponse is the body of the read-all endpoint
type MarkAllReadResponse struct {
	MarkedCount int `json:"markedCount"`
}
