package usecase

import (
	"github.com/go-playground/validator/v10"

	"job-finder-backend/pkg/apperror"
)

var validate = validator.New()

// validatePatch runs the struct-level validation tags on a typed patch and
// maps a failure to a validation error the handler can serialize.
func validatePatch(patch any) error {
	if err := validate.Struct(patch); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}
