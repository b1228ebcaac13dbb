package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore persists uploaded meeting recordings under a fixed directory.
// Files keep their sanitized original name; identically named uploads
// overwrite each other.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// SanitizeFilename reduces an uploaded filename to its base name with any
// path-traversal components removed.
func SanitizeFilename(name string) string {
	// Browsers on Windows may send backslash-separated paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	return name
}

// Save writes the reader's bytes under the upload directory and returns the
// stored relative path.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	relPath := filepath.Join(s.dir, name)

	f, err := os.Create(relPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return relPath, nil
}

// Dir returns the upload directory
func (s *LocalStore) Dir() string {
	return s.dir
}
