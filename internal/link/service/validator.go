package service

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/vdolink/vdolink/internal/validation"
)

// PasswordValidator checks audience passwords against the password policy.
type PasswordValidator struct{}

// NewPasswordValidator creates a PasswordValidator.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// Validate returns nil or a *domain.PolicyViolation for the first violated clause.
func (v *PasswordValidator) Validate(password string) error {
	return validation.Validate(password, appValidation.PasswordPolicy...)
}
