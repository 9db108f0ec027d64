package auth

import (
	"github.com/xyz-asif/voluntra/internal/features/users"
)

// GoogleAuthRequest represents the payload for Google sign-in. Role is
// only honored on first sign-in and may not be admin.
type GoogleAuthRequest struct {
	GoogleIDToken string `json:"googleIdToken" binding:"required"`
	Role          string `json:"role" binding:"omitempty,oneof=volunteer organization"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User        *users.UserProfile `json:"user"`
	AccessToken string             `json:"accessToken"`
}
