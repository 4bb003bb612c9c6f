package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

// DashboardHandler serves catalog statistics.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Summary godoc
// @Summary Catalog statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
