// Package jsonfile persists named JSON documents as flat files in one directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var (
	// ErrNotFound covers every read miss: absent file, unreadable file,
	// invalid UTF-8 or malformed JSON.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidName rejects names that would escape the data directory.
	ErrInvalidName = errors.New("invalid document name")
)

// WriteError describes a failed Save. It unwraps to the underlying I/O error,
// so errors.Is(err, fs.ErrPermission) identifies ownership problems.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Hint returns an operator-facing suggestion for permission failures, or "".
func (e *WriteError) Hint() string {
	if !errors.Is(e.Err, fs.ErrPermission) {
		return ""
	}
	return fmt.Sprintf("Нет прав на запись в %s. Выполните: chown -R %d %s",
		filepath.Dir(e.Path), os.Getuid(), filepath.Dir(e.Path))
}

// Store reads and writes <dir>/<name>.json. It holds no cache: every Load hits
// the file system.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Path returns the file backing document name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load returns the raw JSON of document name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Unreadable document, using defaults", slog.String("path", path), slog.String("error", err.Error()))
		}
		return nil, ErrNotFound
	}
	if !utf8.Valid(data) || !json.Valid(data) {
		s.logger.Warn("Corrupt document, using defaults", slog.String("path", path))
		return nil, ErrNotFound
	}
	return data, nil
}

// Save overwrites document name with v, pretty-printed with two-space indent.
// The directory is created on demand. There is no temp file or backup: a crash
// mid-write can leave a truncated file, which Load then reports as missing.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := s.Path(name)
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Writable probes the data directory by creating and removing a temp file.
func (s *Store) Writable() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return &WriteError{Path: s.dir, Err: err}
	}
	f, err := os.CreateTemp(s.dir, ".probe-*")
	if err != nil {
		return &WriteError{Path: s.dir, Err: err}
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
