package serverutils

import (
	"errors"
	"fmt"

	"anon-board-be/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO's validate tags and converts the first
// failure into a ValidationError so the error handler returns 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return apperrors.NewValidation(fmt.Sprintf("%s cannot be empty", fe.Field()))
		}
		return apperrors.NewValidation(fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return apperrors.NewValidation("invalid request")
}
