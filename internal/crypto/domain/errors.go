package domain

import (
	"github.com/vdolink/vdolink/internal/errors"
)

// Cryptographic operation error definitions.
var (
	// ErrUnsupportedAlgorithm indicates the configured cipher algorithm is not supported.
	//
	// Supported algorithms: aes-gcm, chacha20-poly1305, age-scrypt.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKey indicates the symmetric key is empty.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid key")

	// ErrInvalidKeySize indicates a derived cipher key is not CipherKeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This can be caused by a wrong or regenerated key, tampered or truncated ciphertext, or
	// invalid base64. The specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrKeyFileInvalid indicates the key file exists but holds no usable key.
	ErrKeyFileInvalid = errors.Wrap(errors.ErrStorage, "invalid key file")
)
