// Package fileutil provides whole-file helpers over an afero filesystem.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	apperrors "github.com/vdolink/vdolink/internal/errors"
)

// DirPerm is used for parent directories created on demand.
const DirPerm fs.FileMode = 0o700

// ReadFile reads the whole file at path. A missing file is reported as ErrNotFound; any
// other failure is ErrStorage.
func ReadFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrapf(apperrors.ErrNotFound, "reading %q", path)
		}
		return nil, fmt.Errorf("%w: reading %q: %w", apperrors.ErrStorage, path, err)
	}
	return data, nil
}

// Exists reports whether path exists. Failures other than absence are ErrStorage.
func Exists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %q: %w", apperrors.ErrStorage, path, err)
}

// WriteFileAtomic replaces path with data so readers observe either the old or the new
// content, never a partial write. The data goes to a temporary file in the same directory,
// which is synced, closed and renamed into place; the directory is then synced.
//
// When exclusive is set and path already exists just before the rename, the temporary file
// is discarded and ErrConflict is returned.
func WriteFileAtomic(fsys afero.Fs, path string, data []byte, perm fs.FileMode, exclusive bool) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("%w: creating directory %q: %w", apperrors.ErrStorage, dir, err)
	}

	file, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temporary file in %q: %w", apperrors.ErrStorage, dir, err)
	}
	temporaryPath := file.Name()

	// Write, sync, close; remove the temporary file on any failure.
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = fsys.Remove(temporaryPath)
		return fmt.Errorf("%w: writing temporary file: %w", apperrors.ErrStorage, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = fsys.Remove(temporaryPath)
		return fmt.Errorf("%w: syncing temporary file: %w", apperrors.ErrStorage, err)
	}
	if err := file.Close(); err != nil {
		_ = fsys.Remove(temporaryPath)
		return fmt.Errorf("%w: closing temporary file: %w", apperrors.ErrStorage, err)
	}
	if err := fsys.Chmod(temporaryPath, perm); err != nil {
		_ = fsys.Remove(temporaryPath)
		return fmt.Errorf("%w: setting permissions on temporary file: %w", apperrors.ErrStorage, err)
	}

	if exclusive {
		exists, err := Exists(fsys, path)
		if err != nil {
			_ = fsys.Remove(temporaryPath)
			return err
		}
		if exists {
			_ = fsys.Remove(temporaryPath)
			return apperrors.Wrapf(apperrors.ErrConflict, "%q already exists", path)
		}
	}

	if err := fsys.Rename(temporaryPath, path); err != nil {
		_ = fsys.Remove(temporaryPath)
		return fmt.Errorf("%w: renaming %q into place: %w", apperrors.ErrStorage, path, err)
	}

	// Best effort: make the rename durable across power loss.
	if parent, err := fsys.Open(dir); err == nil {
		_ = parent.Sync()
		_ = parent.Close()
	}

	return nil
}
