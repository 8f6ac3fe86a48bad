package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
)

// plainKeyCodec stores the key as plain text with no delimiters. This is the default
// on-disk contract.
type plainKeyCodec struct{}

// NewPlainKeyCodec returns the codec that stores the raw key text.
func NewPlainKeyCodec() KeyCodec {
	return &plainKeyCodec{}
}

// Encode returns the key text.
func (c *plainKeyCodec) Encode(ctx context.Context, key cryptoDomain.SymmetricKey) ([]byte, error) {
	if key == "" {
		return nil, cryptoDomain.ErrInvalidKey
	}
	return key.Bytes(), nil
}

// Decode trims surrounding whitespace and rejects empty content.
func (c *plainKeyCodec) Decode(ctx context.Context, content []byte) (cryptoDomain.SymmetricKey, error) {
	key, err := cryptoDomain.NewSymmetricKey(string(content))
	if err != nil {
		return "", cryptoDomain.ErrKeyFileInvalid
	}
	return key, nil
}

// kmsKeyCodec stores base64(keeper.Encrypt(key)) so the key file is useless without
// access to the KMS key.
type kmsKeyCodec struct {
	keeper cryptoDomain.KMSKeeper
}

// NewKMSKeyCodec returns a codec that seals the key with keeper.
func NewKMSKeyCodec(keeper cryptoDomain.KMSKeeper) KeyCodec {
	return &kmsKeyCodec{keeper: keeper}
}

// Encode seals the key and returns it base64-encoded.
func (c *kmsKeyCodec) Encode(ctx context.Context, key cryptoDomain.SymmetricKey) ([]byte, error) {
	if key == "" {
		return nil, cryptoDomain.ErrInvalidKey
	}

	plaintext := key.Bytes()
	defer cryptoDomain.Zero(plaintext)

	sealed, err := c.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to seal key with KMS: %w", err)
	}
	return []byte(base64.StdEncoding.EncodeToString(sealed)), nil
}

// Decode base64-decodes and unseals the key.
func (c *kmsKeyCodec) Decode(ctx context.Context, content []byte) (cryptoDomain.SymmetricKey, error) {
	sealed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		return "", fmt.Errorf("%w: sealed key is not valid base64", cryptoDomain.ErrKeyFileInvalid)
	}

	plaintext, err := c.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", fmt.Errorf("%w: failed to unseal key with KMS: %v", cryptoDomain.ErrKeyFileInvalid, err)
	}
	defer cryptoDomain.Zero(plaintext)

	key, err := cryptoDomain.NewSymmetricKey(string(plaintext))
	if err != nil {
		return "", cryptoDomain.ErrKeyFileInvalid
	}
	return key, nil
}
