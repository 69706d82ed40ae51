package usecase

import (
	"errors"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that understands the update field wrappers
// and reports json field names.
func NewValidator() *validator.Validate {
	v := validator.New()
	validation.UseJSONFieldNames(v)
	v.RegisterCustomTypeFunc(domain.FieldValue, domain.FieldTypes()...)
	return v
}

type selfValidator interface {
	Validate() []validation.FieldError
}

// validateInput runs the struct tags and any payload-specific checks, and
// folds every violation into one 422 error.
func validateInput(v *validator.Validate, in any) error {
	var details []validation.FieldError

	if err := v.Struct(in); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return apperror.Internal(err)
		}
		details = validation.FormatValidationErrors(err)
	}
	if sv, ok := in.(selfValidator); ok {
		details = append(details, sv.Validate()...)
	}

	if len(details) > 0 {
		return apperror.Validation("Validation failed", details)
	}
	return nil
}
