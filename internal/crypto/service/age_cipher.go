package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"filippo.io/age"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

const (
	minAgeWorkFactor = 1
	maxAgeWorkFactor = 30
	// ageDefaultMaxWorkFactor mirrors age's own decryption ceiling.
	ageDefaultMaxWorkFactor = 22
)

// AgeStringCipher encrypts strings as age files with an scrypt passphrase recipient,
// using the symmetric key as the passphrase.
type AgeStringCipher struct {
	workFactor int
}

// NewAgeStringCipher creates an AgeStringCipher. workFactor is the scrypt log2(N) used when
// encrypting and must be between 1 and 30.
func NewAgeStringCipher(workFactor int) (*AgeStringCipher, error) {
	if workFactor < minAgeWorkFactor || workFactor > maxAgeWorkFactor {
		return nil, fmt.Errorf("age work factor must be between %d and %d, got %d",
			minAgeWorkFactor, maxAgeWorkFactor, workFactor)
	}
	return &AgeStringCipher{workFactor: workFactor}, nil
}

// EncryptString encrypts plaintext under key and returns standard base64 of the binary age file.
func (c *AgeStringCipher) EncryptString(key cryptoDomain.SymmetricKey, plaintext string) (string, error) {
	if key == "" {
		return "", cryptoDomain.ErrInvalidKey
	}

	recipient, err := age.NewScryptRecipient(key.Reveal())
	if err != nil {
		return "", fmt.Errorf("failed to create scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(c.workFactor)

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}
	if _, err := io.WriteString(w, plaintext); err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecryptString decodes and decrypts a value produced by EncryptString.
func (c *AgeStringCipher) DecryptString(key cryptoDomain.SymmetricKey, encoded string) (string, error) {
	if key == "" {
		return "", cryptoDomain.ErrInvalidKey
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", cryptoDomain.ErrDecryptionFailed)
	}

	identity, err := age.NewScryptIdentity(key.Reveal())
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}
	identity.SetMaxWorkFactor(max(c.workFactor, ageDefaultMaxWorkFactor))

	r, err := age.Decrypt(bytes.NewReader(raw), identity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
