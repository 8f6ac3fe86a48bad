// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vdolink/vdolink/internal/app"
	apperrors "github.com/vdolink/vdolink/internal/errors"
	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
)

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container) {
	if err := container.Shutdown(context.Background()); err != nil {
		container.Logger().Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat rejects anything other than text or json.
func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// userMessage returns the message to show for errors caused by user input.
func userMessage(err error) (string, bool) {
	var violation *linkDomain.PolicyViolation
	switch {
	case apperrors.As(err, &violation):
		return violation.Error(), true
	case apperrors.Is(err, linkDomain.ErrPushIDRequired):
		return linkDomain.PushIDRequiredMessage, true
	default:
		return "", false
	}
}

// reportUserError prints the user-facing reason for err, if it has one, in the requested
// format.
func reportUserError(writer io.Writer, format string, err error) {
	message, ok := userMessage(err)
	if !ok {
		return
	}
	if format == FormatJSON {
		outputJSON(writer, map[string]string{"error": message})
		return
	}
	_, _ = fmt.Fprintln(writer, message)
}

// outputJSON outputs the result in JSON format for machine consumption.
func outputJSON(writer io.Writer, result any) {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
