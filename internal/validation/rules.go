// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	apperrors "github.com/vdolink/vdolink/internal/errors"
	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordClause returns a rule that fails with a *linkDomain.PolicyViolation when the
// value does not meet clause. Empty strings are checked too.
func PasswordClause(clause linkDomain.Clause) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_password_type", "password must be a string")
		}
		if !clause.Satisfied(s) {
			return &linkDomain.PolicyViolation{Clause: clause}
		}
		return nil
	})
}

// PasswordPolicy holds one rule per policy clause, in check order. validation.Validate stops
// at the first failing rule, so only the highest-priority violation is reported.
var PasswordPolicy = func() []validation.Rule {
	rules := make([]validation.Rule, 0, len(linkDomain.Clauses))
	for _, clause := range linkDomain.Clauses {
		rules = append(rules, PasswordClause(clause))
	}
	return rules
}()

// StdBase64 accepts strings that decode with standard padded base64. Empty strings pass so
// validation.Required decides about them.
var StdBase64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})
