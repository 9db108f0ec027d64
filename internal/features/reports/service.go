package reports

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"

	"github.com/xyz-asif/voluntra/internal/features/notifications"
	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/store"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

// Service owns the report lifecycle. Reports are only ever appended or
// have their status changed; nothing deletes them.
type Service struct {
	col      *store.Collection[[]Report]
	userRepo *users.Repository
	notifier *notifications.Service
}

// NewService builds the report service. notifier may be nil; when set,
// reporters are notified about status changes on their reports.
func NewService(st *store.Store, userRepo *users.Repository, notifier *notifications.Service) *Service {
	return &Service{
		col: store.NewCollection(st, CollectionName, func() []Report {
			return []Report{}
		}),
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Submit files a report against reportedUserID. Reporting yourself is
// rejected and nothing is persisted.
func (s *Service) Submit(ctx context.Context, reporterID, reporterName, reportedUserID, reason, details string) (*Report, error) {
	if reporterID == reportedUserID {
		return nil, fmt.Errorf("%w: you cannot report yourself", apperrors.ErrInvalidOperation)
	}

	report := Report{
		ID:             ksuid.New().String(),
		ReporterID:     reporterID,
		ReporterName:   reporterName,
		ReportedUserID: reportedUserID,
		Reason:         reason,
		Details:        details,
		Status:         StatusPending,
		Timestamp:      store.Now(),
	}

	_, err := s.col.Update(ctx, func(all []Report) ([]Report, error) {
		return append(all, report), nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListAll returns every report in submission order. Records written by
// the previous implementation may carry epoch-millisecond timestamps;
// the store codec has already revived those by the time they get here,
// so every element carries a well-formed timestamp.
func (s *Service) ListAll(ctx context.Context) ([]Report, error) {
	all, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	return all, nil
}

// UpdateStatus sets the status of the identified report. Only admins may
// do this, and the service checks the role itself regardless of what the
// transport layer verified. Any status may replace any other.
func (s *Service) UpdateStatus(ctx context.Context, reportID, status, actingAdminID string) (*Report, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown report status %q", apperrors.ErrValidation, status)
	}
	if !s.userRepo.VerifyAdmin(ctx, actingAdminID) {
		return nil, fmt.Errorf("%w: admin role required", apperrors.ErrUnauthorized)
	}

	var updated Report
	_, err := s.col.Update(ctx, func(all []Report) ([]Report, error) {
		for i := range all {
			if all[i].ID == reportID {
				all[i].Status = status
				updated = all[i]
				return all, nil
			}
		}
		return nil, fmt.Errorf("%w: report %s", apperrors.ErrNotFound, reportID)
	})
	if err != nil {
		return nil, err
	}

	// Best effort: the status change stands even if the reporter can't
	// be notified.
	if s.notifier != nil && updated.Status != StatusPending {
		message := fmt.Sprintf("Your report has been %s.", updated.Status)
		if _, err := s.notifier.Create(ctx, updated.ReporterID, message, ""); err != nil {
			log.Warn().Err(err).Str("report", updated.ID).Msg("reports: failed to notify reporter")
		}
	}

	return &updated, nil
}
