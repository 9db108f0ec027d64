package auth

import (
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/config"
	"github.com/xyz-asif/voluntra/internal/features/users"
	idToken "github.com/xyz-asif/voluntra/internal/pkg/jwt"
	"github.com/xyz-asif/voluntra/internal/pkg/response"
)

type Handler struct {
	repo     *users.Repository
	cfg      *config.Config
	firebase *firebaseauth.Client
}

// NewHandler builds the auth handler. firebaseClient may be nil, in
// which case tokens are validated directly against Google.
func NewHandler(repo *users.Repository, cfg *config.Config, firebaseClient *firebaseauth.Client) *Handler {
	return &Handler{
		repo:     repo,
		cfg:      cfg,
		firebase: firebaseClient,
	}
}

// GoogleSignIn godoc
// @Summary Sign in with Google
// @Description Verifies a Google ID token, creates the profile on first sign-in, and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/google [post]
func (h *Handler) GoogleSignIn(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	var googleUser *GoogleUser
	var err error
	if h.firebase != nil {
		googleUser, err = VerifyFirebaseToken(c.Request.Context(), h.firebase, req.GoogleIDToken)
	} else {
		googleUser, err = VerifyGoogleToken(c.Request.Context(), req.GoogleIDToken, h.cfg.GoogleClientID)
	}
	if err != nil {
		response.Unauthorized(c, "Invalid Google token", "INVALID_GOOGLE_TOKEN")
		return
	}

	profile, err := h.repo.FindByID(c.Request.Context(), googleUser.UID)
	if err != nil {
		// First sign-in: create the profile. The requested role is
		// honored here and only here; admin is never self-assigned.
		role := req.Role
		if role == "" {
			role = users.RoleVolunteer
		}

		profile, err = h.repo.Upsert(c.Request.Context(), users.UserProfile{
			ID:             googleUser.UID,
			Role:           role,
			DisplayName:    googleUser.Name,
			Email:          googleUser.Email,
			PhotoURL:       googleUser.Picture,
			BlockedUserIDs: []string{},
		})
		if err != nil {
			response.InternalServerError(c, "Failed to create profile", "STORAGE_ERROR")
			return
		}
	}

	token, err := idToken.GenerateToken(profile.ID, profile.Email, profile.Role, idToken.DefaultConfig(h.cfg.JWTSecret))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "TOKEN_ERROR")
		return
	}

	response.Success(c, AuthResponse{
		User:        profile,
		AccessToken: token,
	})
}

// Me godoc
// @Summary Get the caller's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	response.Success(c, user)
}
