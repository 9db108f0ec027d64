package reports

import (
	"github.com/xyz-asif/voluntra/internal/store"
)

// CollectionName is the store document holding all reports, in
// submission order
const CollectionName = "reports"

// Report statuses. A report starts pending; moderators may move it to
// any other status (and back).
const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// ValidStatus reports whether s is one of the known report statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// Report represents a user report against another user
type Report struct {
	ID             string     `json:"id"`
	ReporterID     string     `json:"reporterId"`
	ReporterName   string     `json:"reporterName"`
	ReportedUserID string     `json:"reportedUserId"`
	Reason         string     `json:"reason"`
	Details        string     `json:"details,omitempty"`
	Status         string     `json:"status"`
	Timestamp      store.Time `json:"timestamp"`
}

// CreateReportRequest represents the payload for submitting a report
type CreateReportRequest struct {
	ReportedUserID string `json:"reportedUserId" binding:"required"`
	Reason         string `json:"reason" binding:"required,min=3,max=200"`
	Details        string `json:"details" binding:"omitempty,max=2000"`
}

// UpdateStatusRequest represents the payload for changing a report's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed resolved dismissed"`
}
