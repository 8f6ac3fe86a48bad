// Package usecase defines the business logic interfaces for symmetric key management.
//
// The key lifecycle is deliberately small: a key is read from its file or, on first use,
// generated and written once. There is no rotation; a lost key file makes previously
// encrypted values unrecoverable.
package usecase

import (
	"context"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

// KeyRepository defines the interface for key file persistence.
//
// Implementations must report a missing file with an error wrapping ErrNotFound, an
// existing file on Create with ErrConflict, and every other failure with ErrStorage.
type KeyRepository interface {
	// Get returns the raw content of the key file.
	Get(ctx context.Context, path string) ([]byte, error)

	// Create writes a new key file atomically without replacing an existing one.
	Create(ctx context.Context, path string, content []byte) error

	// Exists reports whether a key file is present.
	Exists(ctx context.Context, path string) (bool, error)
}

// KeyCodec converts between a SymmetricKey and the bytes stored in the key file.
type KeyCodec interface {
	// Encode returns the key file content for key.
	Encode(ctx context.Context, key cryptoDomain.SymmetricKey) ([]byte, error)

	// Decode parses key file content. Unusable content yields ErrKeyFileInvalid.
	Decode(ctx context.Context, content []byte) (cryptoDomain.SymmetricKey, error)
}

// KeyGenerator produces fresh symmetric keys.
type KeyGenerator interface {
	// Alphanumeric returns a uniform [A-Za-z0-9] string of the given length.
	Alphanumeric(length int) (string, error)
}

// KeyUseCase defines the interface for symmetric key lifecycle operations.
type KeyUseCase interface {
	// LoadOrCreate returns the key stored at path, generating and persisting a new
	// KeyLength alphanumeric key when no key file exists yet.
	//
	// Consecutive calls on an unmodified file return the identical key. Write failures
	// and read failures other than absence are returned as ErrStorage.
	LoadOrCreate(ctx context.Context, path string) (cryptoDomain.SymmetricKey, error)

	// Exists reports whether a key file is already present at path.
	Exists(ctx context.Context, path string) (bool, error)
}
