package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores files in a directory served under a public URL prefix
type Local struct {
	root    string
	baseURL string
}

// NewLocal creates the root directory if needed
func NewLocal(root, baseURL string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is required for local storage")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &Local{root: root, baseURL: baseURL}, nil
}

// Root returns the directory files are written to
func (l *Local) Root() string { return l.root }

func (l *Local) fullPath(name string) (string, error) {
	cleaned, err := Clean(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.root, filepath.FromSlash(cleaned)), nil
}

// Save writes r to name, creating parent directories
func (l *Local) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	full, err := l.fullPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// Open returns a reader for name
func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	full, err := l.fullPath(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

// Delete removes name; a missing file is not an error
func (l *Local) Delete(ctx context.Context, name string) error {
	full, err := l.fullPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// URL returns the public link of name
func (l *Local) URL(name string) string {
	return joinURL(l.baseURL, name)
}
