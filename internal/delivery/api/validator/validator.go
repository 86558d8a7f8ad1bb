// Package validator adapts the listing validator to echo request binding.
package validator

import (
	"directory/internal/domain/directory"

	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validator *directory.Validator
}

// New returns an echo.Validator reporting *domainerrors.ValidationError values.
func New() echo.Validator {
	return &requestValidator{validator: directory.NewValidator()}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
