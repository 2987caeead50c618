package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/neogig/neogig/pkg/util"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct tag validation and maps failures to a
// VALIDATION_FAILED error with per-field details.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError("validation failed", details)
}
