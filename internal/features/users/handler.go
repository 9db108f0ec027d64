package users

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/pkg/pagination"
	"github.com/xyz-asif/voluntra/internal/pkg/response"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// CurrentUser pulls the authenticated profile placed in the context by
// the auth middleware. The second return value reports whether it was set.
func CurrentUser(c *gin.Context) (*UserProfile, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*UserProfile)
	return user, ok
}

// ListProfiles godoc
// @Summary List public profiles
// @Description Browse volunteer and organization profiles, excluding blocked relationships
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "Substring match over name, bio, location and skills"
// @Param role query string false "Filter by role" Enums(volunteer, organization, admin)
// @Param sortBy query string false "Sort field" Enums(displayName, createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20)"
// @Success 200 {object} response.PaginatedResponse
// @Router /users [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var filters ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	profiles, err := h.repo.ListPublicProfiles(c.Request.Context(), filters, user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to list profiles", "STORAGE_ERROR")
		return
	}

	pg := pagination.New(intQuery(c, "page", 1), intQuery(c, "limit", 20), int64(len(profiles)))
	start, end := pg.Slice(len(profiles))

	page := make([]map[string]interface{}, 0, end-start)
	for i := start; i < end; i++ {
		page = append(page, profiles[i].ToPublicProfile())
	}

	response.Paginated(c, page, pg.Total, pg.Limit, pg.Page)
}

// GetProfile godoc
// @Summary Get a public profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found", "USER_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to load profile", "STORAGE_ERROR")
		return
	}

	response.Success(c, profile.ToPublicProfile())
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} response.SuccessResponse
// @Router /users/me [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	updated := *user
	if req.DisplayName != "" {
		updated.DisplayName = req.DisplayName
	}
	if req.Bio != "" {
		updated.Bio = req.Bio
	}
	if req.Location != "" {
		updated.Location = req.Location
	}
	if req.Skills != nil {
		updated.Skills = req.Skills
	}
	if req.Website != "" {
		updated.Website = req.Website
	}
	if req.PhotoURL != "" {
		updated.PhotoURL = req.PhotoURL
	}
	if req.OnboardingComplete != nil {
		updated.OnboardingComplete = *req.OnboardingComplete
	}

	saved, err := h.repo.Upsert(c.Request.Context(), updated)
	if err != nil {
		response.InternalServerError(c, "Failed to save profile", "STORAGE_ERROR")
		return
	}

	response.Success(c, saved)
}

// BlockUser godoc
// @Summary Block a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID to block"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/block [post]
func (h *Handler) BlockUser(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	updated, err := h.repo.BlockUser(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidOperation):
			response.BadRequest(c, "You cannot block yourself", "SELF_BLOCK")
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "User not found", "USER_NOT_FOUND")
		default:
			response.InternalServerError(c, "Failed to block user", "STORAGE_ERROR")
		}
		return
	}

	response.Success(c, updated)
}

// UnblockUser godoc
// @Summary Unblock a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID to unblock"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/block [delete]
func (h *Handler) UnblockUser(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	updated, err := h.repo.UnblockUser(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User is not blocked", "NOT_BLOCKED")
			return
		}
		response.InternalServerError(c, "Failed to unblock user", "STORAGE_ERROR")
		return
	}

	response.Success(c, updated)
}

// GetBlockedUsers godoc
// @Summary Get blocked users
// @Description List the profiles the caller has blocked
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/blocks [get]
func (h *Handler) GetBlockedUsers(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	if len(user.BlockedUserIDs) == 0 {
		response.Success(c, []map[string]interface{}{})
		return
	}

	blocked, err := h.repo.FindByIDs(c.Request.Context(), user.BlockedUserIDs)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch blocked users", "STORAGE_ERROR")
		return
	}

	publics := make([]map[string]interface{}, 0, len(blocked))
	for i := range blocked {
		publics = append(publics, blocked[i].ToPublicProfile())
	}
	response.Success(c, publics)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
