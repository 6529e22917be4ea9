// Package storage persists the serialized task list documents.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Document names.
const (
	Active  = "storage"
	Archive = "archive"
)

// Backend kinds accepted by Open.
const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Backend reads and writes whole documents. Load returns nil data for a
// document that was never saved.
type Backend interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
	Close() error
}

// Open returns the backend of the given kind rooted at dir.
func Open(kind, dir string, logger *log.Logger) (Backend, error) {
	switch kind {
	case KindJSON, "":
		logger.Debug("using json storage", "dir", dir)
		return NewFiles(dir)
	case KindSQLite:
		path := filepath.Join(dir, "tasker.db")
		logger.Debug("using sqlite storage", "path", path)
		return NewSQLite(path)
	}
	return nil, fmt.Errorf("unknown storage backend %q", kind)
}

// Files keeps each document as <dir>/<name>.json.
type Files struct {
	dir string
}

func NewFiles(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &Files{dir: dir}, nil
}

func (f *Files) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

func (f *Files) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Save replaces the document through a temporary file so a crash never
// leaves it half written.
func (f *Files) Save(name string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), f.path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (f *Files) Close() error {
	return nil
}
