// Package validator adapts go-playground/validator for echo request binding.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "gatekeeper/internal/domain/errors"
)

// CustomValidator wraps a validator instance for echo's Validator interface.
type CustomValidator struct {
	validate *playground.Validate
}

// New constructs the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags on a bound request body. Failures surface as the
// domain validation error so the error handler renders a 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
