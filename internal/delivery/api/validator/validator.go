// Package validator adapts go-playground/validator to echo's Validator interface
// so handlers can call c.Validate on bound request structs.
package validator

import (
	"inlet/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates request structs against their `validate` tags.
type Validator struct {
	validate *playground.Validate
}

// New creates a request validator for the echo server.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
