// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance; struct tag metadata is
// cached so one instance serves the whole server.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct's validate tags and returns the raw validation
// error; handlers decide how to present it.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
