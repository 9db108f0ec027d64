package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/pkg/cloudinary"
	"github.com/xyz-asif/voluntra/internal/pkg/response"
)

type Handler struct {
	cloudinary *cloudinary.Service
	repo       *users.Repository
}

func NewHandler(cld *cloudinary.Service, repo *users.Repository) *Handler {
	return &Handler{
		cloudinary: cld,
		repo:       repo,
	}
}

// UploadProfilePhoto godoc
// @Summary Upload a profile photo
// @Description Uploads an image to Cloudinary and sets it as the caller's profile photo
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=cloudinary.UploadResult}
// @Failure 400 {object} response.ErrorResponse
// @Router /media/profile-photo [post]
func (h *Handler) UploadProfilePhoto(c *gin.Context) {
	user, ok := users.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	if h.cloudinary == nil {
		response.InternalServerError(c, "Media uploads are not configured", "MEDIA_DISABLED")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image", "UPLOAD_FAILED")
		return
	}

	user.PhotoURL = result.URL
	if _, err := h.repo.Upsert(c.Request.Context(), *user); err != nil {
		response.InternalServerError(c, "Failed to update profile", "STORAGE_ERROR")
		return
	}

	response.Success(c, result)
}
