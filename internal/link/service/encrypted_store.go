package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
	cryptoService "github.com/vdolink/vdolink/internal/crypto/service"
	apperrors "github.com/vdolink/vdolink/internal/errors"
	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
	appValidation "github.com/vdolink/vdolink/internal/validation"
)

// EncryptedConfigStore keeps the link encrypted inside the config record.
type EncryptedConfigStore struct {
	records RecordRepository
	cipher  cryptoService.StringCipher
	logger  *slog.Logger
}

// NewEncryptedConfigStore creates an EncryptedConfigStore.
func NewEncryptedConfigStore(
	records RecordRepository,
	cipher cryptoService.StringCipher,
	logger *slog.Logger,
) *EncryptedConfigStore {
	return &EncryptedConfigStore{
		records: records,
		cipher:  cipher,
		logger:  logger,
	}
}

// Save encrypts url under key and atomically replaces the config record at path.
func (s *EncryptedConfigStore) Save(
	ctx context.Context,
	path string,
	key cryptoDomain.SymmetricKey,
	url string,
) error {
	encrypted, err := s.cipher.EncryptString(key, url)
	if err != nil {
		return fmt.Errorf("failed to encrypt link: %w", err)
	}

	if err := s.records.Write(ctx, path, &linkDomain.Record{EncryptedURL: encrypted}); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load returns the decrypted link stored at path.
//
// Every failure (missing or unreadable file, bad JSON, empty field, bad base64, wrong key,
// tampered ciphertext) yields ("", false). The cause is logged at debug level only.
func (s *EncryptedConfigStore) Load(
	ctx context.Context,
	path string,
	key cryptoDomain.SymmetricKey,
) (string, bool) {
	record, err := s.records.Read(ctx, path)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			s.logger.DebugContext(ctx, "no stored link", slog.String("path", path))
		} else {
			s.logger.DebugContext(ctx, "config unreadable", slog.String("path", path), slog.Any("error", err))
		}
		return "", false
	}

	err = validation.ValidateStruct(record,
		validation.Field(&record.EncryptedURL, validation.Required, appValidation.StdBase64),
	)
	if err != nil {
		s.logger.DebugContext(ctx, "config record invalid", slog.String("path", path),
			slog.Any("error", appValidation.WrapValidationError(err)))
		return "", false
	}

	url, err := s.cipher.DecryptString(key, record.EncryptedURL)
	if err != nil {
		s.logger.DebugContext(ctx, "stored link cannot be decrypted", slog.String("path", path), slog.Any("error", err))
		return "", false
	}
	return url, true
}
