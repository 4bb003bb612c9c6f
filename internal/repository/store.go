package repository

import (
	"context"
	"errors"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
)

// ResourceStore persists catalog resources. List returns newest uploads first.
type ResourceStore interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
}

// ClassStore persists live classes. List returns newest first.
type ClassStore interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

var (
	errResourceNotFound = appErrors.Clone(appErrors.ErrNotFound, "Resource not found")
	errClassNotFound    = appErrors.Clone(appErrors.ErrNotFound, "Class not found")
)

type validatable interface {
	Validate() error
}

// validateDocument runs schema validation and reports failures as validation errors
// carrying the offending fields.
func validateDocument(doc validatable, message string) error {
	err := doc.Validate()
	if err == nil {
		return nil
	}
	var fieldErrs models.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return appErrors.WithDetails(appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message), fieldErrs.Error())
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
