package validation

import (
	"reflect"
	"strings"

	"micron-manager/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate   *validator.Validate
	knownRoles map[string]bool
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a validator whose customer_role rule accepts "all" and knownRoles.
// Field names in errors are taken from the json tag.
func NewValidator(knownRoles []string) *Validator {
	v := &Validator{
		validate:   validator.New(),
		knownRoles: make(map[string]bool, len(knownRoles)+1),
	}

	v.knownRoles[models.RoleAll] = true
	for _, role := range knownRoles {
		if role = strings.TrimSpace(role); role != "" {
			v.knownRoles[role] = true
		}
	}

	_ = v.validate.RegisterValidation("customer_role", v.validateCustomerRole)

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCustomerRole validates that a role is "all" or one of the configured role names
func (v *Validator) validateCustomerRole(fl validator.FieldLevel) bool {
	return v.knownRoles[fl.Field().String()]
}
