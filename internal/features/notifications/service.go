package notifications

import (
	"context"
	"fmt"
	"sort"

	"github.com/segmentio/ksuid"

	"github.com/xyz-asif/voluntra/internal/store"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

// Service owns notification delivery and read-state. Notifications are
// append-only; read-state is the only field that ever changes.
type Service struct {
	col *store.Collection[[]Notification]
}

func NewService(st *store.Store) *Service {
	return &Service{
		col: store.NewCollection(st, CollectionName, func() []Notification {
			return []Notification{}
		}),
	}
}

// Create appends a notification for userID and returns the stored record
func (s *Service) Create(ctx context.Context, userID, message, link string) (*Notification, error) {
	if userID == "" || message == "" {
		return nil, fmt.Errorf("%w: userId and message are required", apperrors.ErrValidation)
	}

	notification := Notification{
		ID:        ksuid.New().String(),
		UserID:    userID,
		Message:   message,
		Link:      link,
		IsRead:    false,
		Timestamp: store.Now(),
	}

	_, err := s.col.Update(ctx, func(all []Notification) ([]Notification, error) {
		return append(all, notification), nil
	})
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListForUser returns userID's notifications, most recent first
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	all, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Notification, 0, len(all))
	for _, n := range all {
		if n.UserID == userID {
			result = append(result, n)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[j].Timestamp.Before(result[i].Timestamp.Time)
	})
	return result, nil
}

// CountUnread returns how many of userID's notifications are unread
func (s *Service) CountUnread(ctx context.Context, userID string) (int, error) {
	all, err := s.col.Load(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range all {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marks the identified notification as read. A notification
// that does not exist or belongs to someone else is reported as not
// found; one that is already read is returned unchanged without a write.
func (s *Service) MarkRead(ctx context.Context, notificationID, userID string) (*Notification, error) {
	all, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range all {
		if n.ID == notificationID && n.UserID == userID && n.IsRead {
			return &n, nil
		}
	}

	var updated Notification
	_, err = s.col.Update(ctx, func(all []Notification) ([]Notification, error) {
		for i := range all {
			if all[i].ID == notificationID && all[i].UserID == userID {
				all[i].IsRead = true
				updated = all[i]
				return all, nil
			}
		}
		return nil, fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkAllRead marks every unread notification owned by userID as read in
// a single pass and reports how many changed. Nothing is written when
// nothing changed.
func (s *Service) MarkAllRead(ctx context.Context, userID string) (int, error) {
	all, err := s.col.Load(ctx)
	if err != nil {
		return 0, err
	}
	dirty := false
	for _, n := range all {
		if n.UserID == userID && !n.IsRead {
			dirty = true
			break
		}
	}
	if !dirty {
		return 0, nil
	}

	count := 0
	_, err = s.col.Update(ctx, func(all []Notification) ([]Notification, error) {
		for i := range all {
			if all[i].UserID == userID && !all[i].IsRead {
				all[i].IsRead = true
				count++
			}
		}
		return all, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
