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

type classService interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	Create(ctx context.Context, req dto.CreateClassRequest) (*models.Class, error)
	Update(ctx context.Context, id string, req dto.UpdateClassRequest) (*models.Class, error)
	Delete(ctx context.Context, id string) error
}

// ClassHandler exposes live class endpoints.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc classService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes
// @Tags Classes
// @Produce json
// @Param status query string false "ongoing or upcoming"
// @Param university query string false "vtu or autonomous"
// @Param branch query string false "Branch code"
// @Param semester query string false "Semester"
// @Success 200 {array} models.Class
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	var filter models.ClassFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}

	classes, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// Create godoc
// @Summary Create class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body dto.CreateClassRequest true "Class payload"
// @Success 201 {object} models.Class
// @Failure 400 {object} response.ErrorBody
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// Update godoc
// @Summary Update class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id query string true "Class ID"
// @Param payload body dto.UpdateClassRequest true "Fields to change"
// @Success 200 {object} models.Class
// @Failure 404 {object} response.ErrorBody
// @Router /classes [put]
func (h *ClassHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, appErrors.ErrMissingParameter)
		return
	}
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	class, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// Delete godoc
// @Summary Delete class
// @Tags Classes
// @Produce json
// @Param id query string true "Class ID"
// @Success 200 {object} map[string]bool
// @Router /classes [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
