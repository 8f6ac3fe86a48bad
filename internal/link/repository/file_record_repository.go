// Package repository persists the link config record on an afero filesystem.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	apperrors "github.com/vdolink/vdolink/internal/errors"
	"github.com/vdolink/vdolink/internal/fileutil"
	linkDomain "github.com/vdolink/vdolink/internal/link/domain"
)

// RecordFilePerm is the mode of written config files.
const RecordFilePerm = 0o600

// FileRecordRepository stores the config record as a JSON file.
type FileRecordRepository struct {
	fs afero.Fs
}

// NewFileRecordRepository creates a new FileRecordRepository backed by fs.
func NewFileRecordRepository(fs afero.Fs) *FileRecordRepository {
	return &FileRecordRepository{fs: fs}
}

// Read parses the record at path. Comments and trailing commas are tolerated so hand-edited
// files still load; unknown fields are ignored.
func (r *FileRecordRepository) Read(ctx context.Context, path string) (*linkDomain.Record, error) {
	data, err := fileutil.ReadFile(r.fs, path)
	if err != nil {
		return nil, err
	}

	var record linkDomain.Record
	if err := json.Unmarshal(jsonc.ToJSON(data), &record); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", apperrors.ErrInvalidInput, path, err)
	}
	return &record, nil
}

// Write atomically replaces the record at path.
func (r *FileRecordRepository) Write(ctx context.Context, path string, record *linkDomain.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode config record: %w", err)
	}
	return fileutil.WriteFileAtomic(r.fs, path, data, RecordFilePerm, false)
}
