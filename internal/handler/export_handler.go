package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/internal/service"
	"github.com/kalpavruksha/eduhub-admin/pkg/response"
)

type exportService interface {
	ExportResources(ctx context.Context, format string, filter models.ResourceFilter) (*service.ExportFile, error)
	ExportClasses(ctx context.Context, format string, filter models.ClassFilter) (*service.ExportFile, error)
}

// ExportHandler streams CSV or PDF listings.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Resources godoc
// @Summary Export resources
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /resources/export [get]
func (h *ExportHandler) Resources(c *gin.Context) {
	var filter models.ResourceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	file, err := h.service.ExportResources(c.Request.Context(), c.Query("format"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	attach(c, file)
}

// Classes godoc
// @Summary Export classes
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /classes/export [get]
func (h *ExportHandler) Classes(c *gin.Context) {
	var filter models.ClassFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	file, err := h.service.ExportClasses(c.Request.Context(), c.Query("format"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	attach(c, file)
}

func attach(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
