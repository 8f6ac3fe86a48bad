// Package domain defines the link record, the secure URL format and the password policy
// shared by the credential generator and the password validator.
package domain

import (
	"strings"

	"github.com/vdolink/vdolink/internal/errors"
)

// Character classes of the password policy.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SpecialChars   = "!@#$%^&*"
)

// Policy lengths.
const (
	// MinPasswordLength is the shortest audience password the validator accepts.
	MinPasswordLength = 8

	// PasswordLength is the length of generated audience passwords.
	PasswordLength = 16

	// PushIDLength is the length of generated push ids.
	PushIDLength = 8
)

// PasswordChars is the union of all policy classes. Generated passwords draw from it after
// the one mandatory character per class.
const PasswordChars = UppercaseChars + LowercaseChars + DigitChars + SpecialChars

// Clause identifies a single rule of the password policy.
type Clause int

// Clauses in the order the validator checks them. Only the first violated clause is reported.
const (
	ClauseLength Clause = iota + 1
	ClauseUppercase
	ClauseLowercase
	ClauseDigit
	ClauseSpecial
)

// Clauses lists every clause in check order.
var Clauses = []Clause{ClauseLength, ClauseUppercase, ClauseLowercase, ClauseDigit, ClauseSpecial}

// String returns the clause name.
func (c Clause) String() string {
	switch c {
	case ClauseLength:
		return "length"
	case ClauseUppercase:
		return "uppercase"
	case ClauseLowercase:
		return "lowercase"
	case ClauseDigit:
		return "digit"
	case ClauseSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Message returns the user-facing reason for a violated clause.
func (c Clause) Message() string {
	switch c {
	case ClauseLength:
		return "Password must be at least 8 characters long."
	case ClauseUppercase:
		return "Password must contain at least one uppercase letter."
	case ClauseLowercase:
		return "Password must contain at least one lowercase letter."
	case ClauseDigit:
		return "Password must contain at least one digit."
	case ClauseSpecial:
		return "Password must contain at least one special character (!@#$%^&*)."
	default:
		return "Password does not satisfy the policy."
	}
}

// Satisfied reports whether password meets the clause.
func (c Clause) Satisfied(password string) bool {
	switch c {
	case ClauseLength:
		return len(password) >= MinPasswordLength
	case ClauseUppercase:
		return strings.ContainsAny(password, UppercaseChars)
	case ClauseLowercase:
		return strings.ContainsAny(password, LowercaseChars)
	case ClauseDigit:
		return strings.ContainsAny(password, DigitChars)
	case ClauseSpecial:
		return strings.ContainsAny(password, SpecialChars)
	default:
		return false
	}
}

// PolicyViolation reports the first password clause that was not met.
type PolicyViolation struct {
	Clause Clause
}

// Error returns the user-facing reason, suitable for display as-is.
func (v *PolicyViolation) Error() string {
	return v.Clause.Message()
}

// Unwrap makes violations match ErrInvalidInput.
func (v *PolicyViolation) Unwrap() error {
	return errors.ErrInvalidInput
}
