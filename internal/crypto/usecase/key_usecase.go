package usecase

import (
	"context"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
	apperrors "github.com/vdolink/vdolink/internal/errors"
)

// keyUseCase implements KeyUseCase on top of a KeyRepository and KeyCodec.
type keyUseCase struct {
	keyRepo   KeyRepository
	codec     KeyCodec
	generator KeyGenerator
	logger    *slog.Logger
}

// NewKeyUseCase creates a new KeyUseCase.
func NewKeyUseCase(
	keyRepo KeyRepository,
	codec KeyCodec,
	generator KeyGenerator,
	logger *slog.Logger,
) KeyUseCase {
	return &keyUseCase{
		keyRepo:   keyRepo,
		codec:     codec,
		generator: generator,
		logger:    logger,
	}
}

// LoadOrCreate reads the key file at path or creates it.
//
// Creation never replaces an existing file. When another writer creates the file between
// the read and the create, the file on disk wins and is re-read, so every caller ends up
// with the key that is actually persisted.
func (k *keyUseCase) LoadOrCreate(ctx context.Context, path string) (cryptoDomain.SymmetricKey, error) {
	content, err := k.keyRepo.Get(ctx, path)
	if err == nil {
		return k.codec.Decode(ctx, content)
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	raw, err := k.generator.Alphanumeric(cryptoDomain.KeyLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	key := cryptoDomain.SymmetricKey(raw)

	encoded, err := k.codec.Encode(ctx, key)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(encoded)

	err = k.keyRepo.Create(ctx, path, encoded)
	switch {
	case err == nil:
		k.logger.Info("created new encryption key", slog.String("path", path))
		return key, nil
	case apperrors.Is(err, apperrors.ErrConflict):
		k.logger.Warn("key file appeared concurrently, using the persisted key", slog.String("path", path))
	default:
		return "", err
	}

	content, err = k.keyRepo.Get(ctx, path)
	if err != nil {
		return "", err
	}
	return k.codec.Decode(ctx, content)
}

// Exists reports whether a key file is already present at path.
func (k *keyUseCase) Exists(ctx context.Context, path string) (bool, error) {
	return k.keyRepo.Exists(ctx, path)
}
