// Package service provides the cryptographic services that protect the stored link.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), HKDF key derivation, an age
// scrypt cipher, and KMS keeper access for sealing the key file.
package service

import (
	"context"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// StringCipher encrypts text under a symmetric key and encodes the result as base64.
// The same key and ciphertext always decrypt back to the identical string.
type StringCipher interface {
	// EncryptString encrypts plaintext and returns standard base64.
	EncryptString(key cryptoDomain.SymmetricKey, plaintext string) (string, error)

	// DecryptString reverses EncryptString. Any failure maps to ErrDecryptionFailed
	// (or ErrInvalidKey for an empty key).
	DecryptString(key cryptoDomain.SymmetricKey, encoded string) (string, error)
}

// KMSService opens KMS keepers used to seal the key file.
type KMSService interface {
	// OpenKeeper opens a secrets.Keeper for the configured KMS provider.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
