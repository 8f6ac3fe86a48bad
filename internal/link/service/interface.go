// Package service provides the link credential generator, the password validator and the
// encrypted config store.
package service

import (
	"context"

	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
)

// RecordRepository persists the config record.
type RecordRepository interface {
	// Read returns the record at path. A missing file wraps ErrNotFound, an unparsable one
	// wraps ErrInvalidInput and any other read failure wraps ErrStorage.
	Read(ctx context.Context, path string) (*linkDomain.Record, error)

	// Write atomically replaces the record at path.
	Write(ctx context.Context, path string, record *linkDomain.Record) error
}
