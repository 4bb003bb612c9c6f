package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
	"github.com/kalpavruksha/eduhub-admin/pkg/response"
)

type uploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResult, error)
}

// UploadHandler accepts PDF uploads.
type UploadHandler struct {
	service uploadService
}

// NewUploadHandler constructs an upload handler.
func NewUploadHandler(svc uploadService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// Upload godoc
// @Summary Upload a PDF
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.UploadResult
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No file uploaded"))
			return
		}
		response.Error(c, invalidPayload(err))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message))
		return
	}
	defer file.Close() //nolint:errcheck

	result, err := h.service.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
