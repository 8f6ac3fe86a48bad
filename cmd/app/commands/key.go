package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/vdolink/vdolink/internal/crypto/domain"
	cryptoUseCase "github.com/vdolink/vdolink/internal/crypto/usecase"
)

// RunCreateKey makes sure the key file at path exists, creating it when absent. The key
// itself is never printed.
func RunCreateKey(
	ctx context.Context,
	keyUseCase cryptoUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	path string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	existed, err := keyUseCase.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to check key file: %w", err)
	}

	if _, err := keyUseCase.LoadOrCreate(ctx, path); err != nil {
		return fmt.Errorf("failed to load or create key: %w", err)
	}

	created := !existed
	if format == FormatJSON {
		outputJSON(writer, map[string]any{"path": path, "created": created})
	} else if created {
		_, _ = fmt.Fprintf(writer, "Key file created: %s\n", path)
	} else {
		_, _ = fmt.Fprintf(writer, "Key file already exists: %s\n", path)
	}

	logger.Info("key file ready", slog.String("path", path), slog.Bool("created", created))
	return nil
}

// RunCreateKMSKeyURI prints a fresh base64key:// URI for local key file sealing. random
// defaults to crypto/rand when nil.
//
// Security: a local key URI only moves the secret into the environment. Use a cloud KMS
// (awskms, gcpkms, azurekeyvault, hashivault) in production.
func RunCreateKMSKeyURI(writer io.Writer, random io.Reader) error {
	if random == nil {
		random = rand.Reader
	}

	secret := make([]byte, cryptoDomain.CipherKeySize)
	defer cryptoDomain.Zero(secret)
	if _, err := io.ReadFull(random, secret); err != nil {
		return fmt.Errorf("failed to generate kms key: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Local KMS key for sealing the key file")
	_, _ = fmt.Fprintln(writer, "# Copy this line to your .env file or secrets manager")
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"base64key://%s\"\n", base64.URLEncoding.EncodeToString(secret))
	return nil
}
