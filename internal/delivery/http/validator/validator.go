// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "expitrack/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates request payloads bound by the handlers.
type Validator struct {
	validate *playground.Validate
}

// New creates the request validator used by the echo server.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
