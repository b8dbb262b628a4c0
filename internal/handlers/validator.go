package handlers

import (
	"micron-manager/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator accepting the given role names
func NewValidator(knownRoles []string) echo.Validator {
	return &CustomValidator{validator: validation.NewValidator(knownRoles)}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
