// Package repository implements key file persistence on an afero filesystem.
package repository

import (
	"context"

	"github.com/spf13/afero"

	"github.com/vdolink/vdolink/internal/fileutil"
)

// KeyFilePerm is the mode of newly created key files.
const KeyFilePerm = 0o600

// FileKeyRepository stores the encoded symmetric key as the whole content of a file.
//
// The repository is path-agnostic: every call names the file it operates on, and the
// caller decides where keys live.
type FileKeyRepository struct {
	fs afero.Fs
}

// NewFileKeyRepository creates a new FileKeyRepository backed by fs.
func NewFileKeyRepository(fs afero.Fs) *FileKeyRepository {
	return &FileKeyRepository{fs: fs}
}

// Get returns the raw key file content.
//
// Returns an error wrapping ErrNotFound when the file does not exist, and ErrStorage for
// any other read failure (permission denied, path is a directory, I/O error).
func (r *FileKeyRepository) Get(ctx context.Context, path string) ([]byte, error) {
	return fileutil.ReadFile(r.fs, path)
}

// Create writes content as a new key file at path.
//
// The file appears atomically with its full content. If a key file already exists at
// path the existing file is left untouched and an error wrapping ErrConflict is returned.
func (r *FileKeyRepository) Create(ctx context.Context, path string, content []byte) error {
	return fileutil.WriteFileAtomic(r.fs, path, content, KeyFilePerm, true)
}

// Exists reports whether a key file is present at path.
func (r *FileKeyRepository) Exists(ctx context.Context, path string) (bool, error) {
	return fileutil.Exists(r.fs, path)
}
