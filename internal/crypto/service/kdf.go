package service

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

const kdfInfo = "vdolink config encryption"

// DeriveKey stretches secret into a CipherKeySize key using HKDF-SHA256 with the given salt.
// Secrets of any non-zero length are accepted.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, cryptoDomain.ErrInvalidKey
	}

	key := make([]byte, cryptoDomain.CipherKeySize)
	reader := hkdf.New(sha256.New, secret, salt, []byte(kdfInfo))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
