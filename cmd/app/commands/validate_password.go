package commands

import (
	"fmt"
	"io"
)

// PasswordValidator checks audience passwords.
type PasswordValidator interface {
	Validate(password string) error
}

// RunValidatePassword checks password against the audience password policy and prints the
// result. A violation prints its reason and is returned.
func RunValidatePassword(validator PasswordValidator, writer io.Writer, password, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if err := validator.Validate(password); err != nil {
		reportUserError(writer, format, err)
		return fmt.Errorf("password rejected: %w", err)
	}

	if format == FormatJSON {
		outputJSON(writer, map[string]bool{"valid": true})
	} else {
		_, _ = fmt.Fprintln(writer, "Password is valid.")
	}
	return nil
}
