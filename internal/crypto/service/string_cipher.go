package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

// aeadNonceSize is shared by AES-GCM and ChaCha20-Poly1305.
const aeadNonceSize = 12

// NewStringCipher returns the StringCipher for alg. ageWorkFactor is only consulted for
// age-scrypt.
func NewStringCipher(alg cryptoDomain.Algorithm, ageWorkFactor int) (StringCipher, error) {
	switch alg {
	case cryptoDomain.AESGCM, cryptoDomain.ChaCha20:
		return NewAEADStringCipher(NewAEADManager(), alg), nil
	case cryptoDomain.AgeScrypt:
		return NewAgeStringCipher(ageWorkFactor)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}

// AEADStringCipher encrypts strings with an AEAD keyed by HKDF(symmetric key, salt).
//
// Encoded layout, before base64: salt(16) || nonce(12) || ciphertext+tag. The salt is also
// bound as associated data.
type AEADStringCipher struct {
	manager AEADManager
	alg     cryptoDomain.Algorithm
}

// NewAEADStringCipher creates an AEADStringCipher for alg.
func NewAEADStringCipher(manager AEADManager, alg cryptoDomain.Algorithm) *AEADStringCipher {
	return &AEADStringCipher{manager: manager, alg: alg}
}

// EncryptString encrypts plaintext under key and returns standard base64.
func (c *AEADStringCipher) EncryptString(key cryptoDomain.SymmetricKey, plaintext string) (string, error) {
	if key == "" {
		return "", cryptoDomain.ErrInvalidKey
	}

	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := c.cipherFor(key, salt)
	if err != nil {
		return "", err
	}

	ciphertext, nonce, err := aead.Encrypt([]byte(plaintext), salt)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptString decodes and decrypts a value produced by EncryptString.
func (c *AEADStringCipher) DecryptString(key cryptoDomain.SymmetricKey, encoded string) (string, error) {
	if key == "" {
		return "", cryptoDomain.ErrInvalidKey
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", cryptoDomain.ErrDecryptionFailed)
	}
	if len(blob) < cryptoDomain.SaltSize+aeadNonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", cryptoDomain.ErrDecryptionFailed)
	}

	salt := blob[:cryptoDomain.SaltSize]
	nonce := blob[cryptoDomain.SaltSize : cryptoDomain.SaltSize+aeadNonceSize]
	ciphertext := blob[cryptoDomain.SaltSize+aeadNonceSize:]

	aead, err := c.cipherFor(key, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(ciphertext, nonce, salt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func (c *AEADStringCipher) cipherFor(key cryptoDomain.SymmetricKey, salt []byte) (AEAD, error) {
	secret := key.Bytes()
	defer cryptoDomain.Zero(secret)

	derived, err := DeriveKey(secret, salt)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(derived)

	return c.manager.CreateCipher(derived, c.alg)
}
