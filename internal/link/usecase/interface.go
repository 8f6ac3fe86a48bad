// Package usecase implements the caller-facing link operations: generate, set, load and
// ensure.
package usecase

import (
	"context"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

// ConfigStore persists the link encrypted under a symmetric key.
type ConfigStore interface {
	// Save encrypts url and replaces the config file at path.
	Save(ctx context.Context, path string, key cryptoDomain.SymmetricKey, url string) error

	// Load returns the decrypted link, or ("", false) when none can be read.
	Load(ctx context.Context, path string, key cryptoDomain.SymmetricKey) (string, bool)
}

// LinkGenerator produces fresh secure links.
type LinkGenerator interface {
	SecureURL(host string) (string, error)
}

// PasswordValidator checks audience passwords.
type PasswordValidator interface {
	Validate(password string) error
}

// LinkUseCase defines the link operations exposed to the CLI.
type LinkUseCase interface {
	// GenerateAndPersist creates a link with a random push id and audience password, stores
	// it and returns it.
	GenerateAndPersist(ctx context.Context) (string, error)

	// SetManual stores a link composed from pushID and an optional audience password.
	// Returns ErrPushIDRequired for an empty pushID and a *domain.PolicyViolation for an
	// audience password that does not meet the policy.
	SetManual(ctx context.Context, pushID, audience string) error

	// Load returns the stored link. Any failure yields ("", false).
	Load(ctx context.Context) (string, bool)

	// Ensure returns the stored link, generating and storing one when none loads. The bool
	// reports whether a new link was generated.
	Ensure(ctx context.Context) (string, bool, error)
}
