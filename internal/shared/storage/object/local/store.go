package local

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"resume-page/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir returns the directory objects are read from.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Open opens a stored object for reading. A missing file is reported as a
// 404 StatusError, the same way a static file server would answer.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := cleanKey(storageKey)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &object.StatusError{Code: http.StatusNotFound, Key: storageKey}
		}
		return nil, errors.Wrap(err, "open file")
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "stat file")
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &object.StatusError{Code: http.StatusNotFound, Key: storageKey}
	}
	return f, nil
}

func cleanKey(storageKey string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimSpace(storageKey)))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", errors.Errorf("invalid storage key %q", storageKey)
	}
	return clean, nil
}

var _ object.ObjectStore = (*Store)(nil)
