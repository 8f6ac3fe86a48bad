package domain

import (
	"github.com/vdolink/vdolink/internal/errors"
)

// PushIDRequiredMessage is shown when a manual link is set without a push id.
const PushIDRequiredMessage = "Push ID (Room Name) is required."

// Link-specific error definitions.
var (
	// ErrPushIDRequired indicates a manual link was requested with an empty push id.
	ErrPushIDRequired = errors.Wrap(errors.ErrInvalidInput, "push id is required")
)
