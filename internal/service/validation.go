package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFields converts a validator failure into a 400 naming the absent fields.
func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required fields")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	appErr := appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required fields")
	return appErrors.WithDetails(appErr, strings.Join(fields, ", "))
}

// storeFailure passes typed errors through and reports anything else as an
// unavailable store, keeping the driver message as details.
func storeFailure(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	wrapped := appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, message)
	return appErrors.WithDetails(wrapped, err.Error())
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return appErrors.ErrMissingParameter
	}
	return nil
}

// pick overwrites dst when the partial update carries a value.
func pick[T ~string](dst *T, src *string) {
	if src != nil {
		*dst = T(*src)
	}
}
