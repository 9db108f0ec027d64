package users

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xyz-asif/voluntra/internal/store"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

// Repository handles profile persistence for the users collection
type Repository struct {
	col *store.Collection[map[string]UserProfile]
}

func NewRepository(st *store.Store) *Repository {
	return &Repository{
		col: store.NewCollection(st, CollectionName, func() map[string]UserProfile {
			return map[string]UserProfile{}
		}),
	}
}

// FindByID returns the profile for id
func (r *Repository) FindByID(ctx context.Context, id string) (*UserProfile, error) {
	profiles, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	profile, ok := profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, id)
	}
	return &profile, nil
}

// FindByIDs returns the profiles for the given ids, skipping unknown ones
func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]UserProfile, error) {
	profiles, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserProfile, 0, len(ids))
	for _, id := range ids {
		if profile, ok := profiles[id]; ok {
			result = append(result, profile)
		}
	}
	return result, nil
}

// Upsert creates or replaces a profile. A user can never block themselves;
// the invariant is enforced on every write.
func (r *Repository) Upsert(ctx context.Context, profile UserProfile) (*UserProfile, error) {
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: profile id is required", apperrors.ErrValidation)
	}

	blocked := profile.BlockedUserIDs[:0]
	for _, id := range profile.BlockedUserIDs {
		if id != profile.ID {
			blocked = append(blocked, id)
		}
	}
	profile.BlockedUserIDs = blocked
	profile.UpdatedAt = store.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	_, err := r.col.Update(ctx, func(profiles map[string]UserProfile) (map[string]UserProfile, error) {
		profiles[profile.ID] = profile
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// VerifyAdmin reports whether the profile stored under userID holds the
// admin role. Unknown users are never admins.
func (r *Repository) VerifyAdmin(ctx context.Context, userID string) bool {
	profiles, err := r.col.Load(ctx)
	if err != nil {
		return false
	}

	profile, ok := profiles[userID]
	return ok && profile.Role == RoleAdmin
}

// BlockUser adds targetID to blockerID's block list. Blocking yourself is
// rejected; blocking someone already blocked succeeds without a change.
func (r *Repository) BlockUser(ctx context.Context, blockerID, targetID string) (*UserProfile, error) {
	if blockerID == targetID {
		return nil, fmt.Errorf("%w: you cannot block yourself", apperrors.ErrInvalidOperation)
	}

	var result UserProfile
	_, err := r.col.Update(ctx, func(profiles map[string]UserProfile) (map[string]UserProfile, error) {
		blocker, ok := profiles[blockerID]
		if !ok {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, blockerID)
		}
		if _, ok := profiles[targetID]; !ok {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, targetID)
		}

		if !blocker.HasBlocked(targetID) {
			blocker.BlockedUserIDs = append(blocker.BlockedUserIDs, targetID)
			blocker.UpdatedAt = store.Now()
			profiles[blockerID] = blocker
		}
		result = blocker
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UnblockUser removes targetID from blockerID's block list. Unblocking a
// user who was never blocked is reported as not found.
func (r *Repository) UnblockUser(ctx context.Context, blockerID, targetID string) (*UserProfile, error) {
	var result UserProfile
	_, err := r.col.Update(ctx, func(profiles map[string]UserProfile) (map[string]UserProfile, error) {
		blocker, ok := profiles[blockerID]
		if !ok {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, blockerID)
		}
		if !blocker.HasBlocked(targetID) {
			return nil, fmt.Errorf("%w: user %s is not blocked", apperrors.ErrNotFound, targetID)
		}

		blocked := make([]string, 0, len(blocker.BlockedUserIDs)-1)
		for _, id := range blocker.BlockedUserIDs {
			if id != targetID {
				blocked = append(blocked, id)
			}
		}
		blocker.BlockedUserIDs = blocked
		blocker.UpdatedAt = store.Now()
		profiles[blockerID] = blocker

		result = blocker
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPublicProfiles returns the profiles visible to excludeUserID: the
// requester themselves are omitted, as is anyone on either side of a block.
func (r *Repository) ListPublicProfiles(ctx context.Context, filters ListFilters, excludeUserID string) ([]UserProfile, error) {
	profiles, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	var requester *UserProfile
	if excludeUserID != "" {
		if p, ok := profiles[excludeUserID]; ok {
			requester = &p
		}
	}

	keyword := strings.ToLower(strings.TrimSpace(filters.Keyword))

	result := make([]UserProfile, 0, len(profiles))
	for id, profile := range profiles {
		if id == excludeUserID {
			continue
		}
		if profile.HasBlocked(excludeUserID) && excludeUserID != "" {
			continue
		}
		if requester != nil && requester.HasBlocked(id) {
			continue
		}
		if filters.Role != "" && profile.Role != filters.Role {
			continue
		}
		if keyword != "" && !matchesKeyword(&profile, keyword) {
			continue
		}
		result = append(result, profile)
	}

	sortProfiles(result, filters.SortBy, filters.SortOrder)
	return result, nil
}

// matchesKeyword does a case-insensitive substring match over the
// profile's text fields.
func matchesKeyword(p *UserProfile, keyword string) bool {
	if strings.Contains(strings.ToLower(p.DisplayName), keyword) ||
		strings.Contains(strings.ToLower(p.Bio), keyword) ||
		strings.Contains(strings.ToLower(p.Location), keyword) {
		return true
	}
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), keyword) {
			return true
		}
	}
	return false
}

func sortProfiles(profiles []UserProfile, sortBy, sortOrder string) {
	desc := sortOrder == "desc"

	sort.Slice(profiles, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "createdAt":
			less = profiles[i].CreatedAt.Before(profiles[j].CreatedAt.Time)
		default:
			less = strings.ToLower(profiles[i].DisplayName) < strings.ToLower(profiles[j].DisplayName)
		}
		if desc {
			return !less
		}
		return less
	})
}
