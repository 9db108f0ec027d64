package users

import (
	"github.com/xyz-asif/voluntra/internal/store"
)

// Roles a profile can hold
const (
	RoleVolunteer    = "volunteer"
	RoleOrganization = "organization"
	RoleAdmin        = "admin"
)

// CollectionName is the store document holding all profiles, keyed by id
const CollectionName = "users"

// UserProfile represents a registered user of the board
type UserProfile struct {
	ID                 string     `json:"id"`
	Role               string     `json:"role"`
	DisplayName        string     `json:"displayName"`
	Email              string     `json:"email"`
	Bio                string     `json:"bio,omitempty"`
	Location           string     `json:"location,omitempty"`
	Skills             []string   `json:"skills,omitempty"`
	Website            string     `json:"website,omitempty"`
	PhotoURL           string     `json:"photoUrl,omitempty"`
	OnboardingComplete bool       `json:"onboardingComplete"`
	BlockedUserIDs     []string   `json:"blockedUserIds"`
	CreatedAt          store.Time `json:"createdAt"`
	UpdatedAt          store.Time `json:"updatedAt"`
}

// HasBlocked reports whether the profile's block list contains id
func (u *UserProfile) HasBlocked(id string) bool {
	for _, blocked := range u.BlockedUserIDs {
		if blocked == id {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the profile holds the admin role
func (u *UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ToPublicProfile returns the fields safe for display to other users
func (u *UserProfile) ToPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":                 u.ID,
		"role":               u.Role,
		"displayName":        u.DisplayName,
		"bio":                u.Bio,
		"location":           u.Location,
		"skills":             u.Skills,
		"website":            u.Website,
		"photoUrl":           u.PhotoURL,
		"onboardingComplete": u.OnboardingComplete,
		"createdAt":          u.CreatedAt,
	}
}

// ListFilters narrows and orders the public profile listing
type ListFilters struct {
	Keyword   string `form:"keyword"`
	Role      string `form:"role" binding:"omitempty,oneof=volunteer organization admin"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=displayName createdAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// UpdateProfileRequest represents the payload for updating the caller's profile
type UpdateProfileRequest struct {
	DisplayName        string   `json:"displayName" binding:"omitempty,min=2,max=50"`
	Bio                string   `json:"bio" binding:"omitempty,max=300"`
	Location           string   `json:"location" binding:"omitempty,max=100"`
	Skills             []string `json:"skills" binding:"omitempty,max=20,dive,max=40"`
	Website            string   `json:"website" binding:"omitempty,url"`
	PhotoURL           string   `json:"photoUrl" binding:"omitempty,url"`
	OnboardingComplete *bool    `json:"onboardingComplete"`
}
