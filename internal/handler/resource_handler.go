package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/internal/models"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
	"github.com/kalpavruksha/eduhub-admin/pkg/response"
)

type resourceService interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Create(ctx context.Context, req dto.CreateResourceRequest) (*models.Resource, error)
	Update(ctx context.Context, id string, req dto.UpdateResourceRequest) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler exposes catalog resource endpoints.
type ResourceHandler struct {
	service resourceService
}

// NewResourceHandler constructs a resource handler.
func NewResourceHandler(svc resourceService) *ResourceHandler {
	return &ResourceHandler{service: svc}
}

// List godoc
// @Summary List resources
// @Tags Resources
// @Produce json
// @Param university query string false "vtu or autonomous"
// @Param branch query string false "Branch code"
// @Param semester query string false "Semester, e.g. 3rd"
// @Param type query string false "Resource type"
// @Success 200 {array} models.Resource
// @Failure 500 {object} response.ErrorBody
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	var filter models.ResourceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}

	resources, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resources)
}

// Create godoc
// @Summary Create resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body dto.CreateResourceRequest true "Resource payload"
// @Success 201 {object} models.Resource
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	resource, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resource)
}

// Update godoc
// @Summary Update resource
// @Tags Resources
// @Accept json
// @Produce json
// @Param id query string true "Resource ID"
// @Param payload body dto.UpdateResourceRequest true "Fields to change"
// @Success 200 {object} models.Resource
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /resources [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, appErrors.ErrMissingParameter)
		return
	}
	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	resource, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resource)
}

// Delete godoc
// @Summary Delete resource
// @Tags Resources
// @Produce json
// @Param id query string true "Resource ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /resources [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

func invalidPayload(err error) error {
	return appErrors.WithDetails(appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), err.Error())
}
