package reports

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/pkg/pagination"
	"github.com/xyz-asif/voluntra/internal/pkg/response"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateReport godoc
// @Summary Report a user
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report details"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) CreateReport(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	report, err := h.service.Submit(
		c.Request.Context(),
		user.ID,
		user.DisplayName,
		req.ReportedUserID,
		req.Reason,
		req.Details,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidOperation) {
			response.BadRequest(c, "You cannot report yourself", "SELF_REPORT")
			return
		}
		response.InternalServerError(c, "Failed to submit report", "STORAGE_ERROR")
		return
	}

	response.Created(c, report)
}

// ListReports godoc
// @Summary List all reports
// @Description Admin view of every report in submission order
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20)"
// @Success 200 {object} response.PaginatedResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /reports [get]
func (h *Handler) ListReports(c *gin.Context) {
	all, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load reports", "STORAGE_ERROR")
		return
	}

	pg := pagination.New(intQuery(c, "page", 1), intQuery(c, "limit", 20), int64(len(all)))
	start, end := pg.Slice(len(all))

	response.Paginated(c, all[start:end], pg.Total, pg.Limit, pg.Page)
}

// UpdateReportStatus godoc
// @Summary Change a report's status
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/status [patch]
func (h *Handler) UpdateReportStatus(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	report, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			response.Forbidden(c, "Admin role required", "ADMIN_REQUIRED")
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
		case errors.Is(err, apperrors.ErrValidation):
			response.BadRequest(c, "Unknown report status", "INVALID_STATUS")
		default:
			response.InternalServerError(c, "Failed to update report", "STORAGE_ERROR")
		}
		return
	}

	response.Success(c, report)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
