// SPDX-License-Identifier: MPL-2.0

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zxygithub/evm/internal/codec"
	"github.com/zxygithub/evm/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// Storage persists the whole mapping as one document.
	Storage interface {
		// Read returns the persisted mapping. Missing or unreadable documents
		// yield an empty mapping, never an error.
		Read() map[string]string
		// Write replaces the persisted document with vars.
		Write(vars map[string]string) error
		// Path reports where the document lives.
		Path() string
	}

	// FileStorage stores the mapping as an indented JSON object in a single file.
	FileStorage struct {
		path   string
		logger *log.Logger
	}

	// MemoryStorage keeps the document in memory. WriteErr, when set, is returned
	// from every Write so tests can exercise failed persists.
	MemoryStorage struct {
		Vars     map[string]string
		WriteErr error
		Writes   int
	}
)

// NewFileStorage creates a Storage backed by path. A nil logger discards diagnostics.
func NewFileStorage(path string, logger *log.Logger) *FileStorage {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStorage{path: path, logger: logger}
}

// Path reports the storage file location.
func (s *FileStorage) Path() string { return s.path }

// Read loads the mapping from disk.
func (s *FileStorage) Read() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("ignoring unreadable store file", "path", s.path, "error", err)
		}
		return map[string]string{}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}
	}

	vars, err := codec.DecodeFlatJSON(data)
	if err != nil {
		s.logger.Debug("ignoring corrupt store file", "path", s.path, "error", err)
		return map[string]string{}
	}
	return vars
}

// Write atomically rewrites the file, creating parent directories on first use.
func (s *FileStorage) Write(vars map[string]string) error {
	var buf bytes.Buffer
	if err := codec.EncodeJSON(&buf, vars); err != nil {
		return fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, s.path, err)
	}
	if err := WriteFileAtomic(s.path, buf.Bytes()); err != nil {
		return err
	}
	s.logger.Debug("store saved", "path", s.path, "variables", len(vars))
	return nil
}

// WriteFileAtomic writes data to a temp file beside path and renames it into place.
// Errors wrap issue.ErrIOFailure.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, path, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", issue.ErrIOFailure, path, err)
	}
	return nil
}

// NewMemoryStorage creates an in-memory Storage seeded with vars.
func NewMemoryStorage(vars map[string]string) *MemoryStorage {
	return &MemoryStorage{Vars: cloneVars(vars)}
}

// Path returns a placeholder location.
func (m *MemoryStorage) Path() string { return ":memory:" }

// Read returns a copy of the stored mapping.
func (m *MemoryStorage) Read() map[string]string { return cloneVars(m.Vars) }

// Write stores a copy of vars unless WriteErr is set.
func (m *MemoryStorage) Write(vars map[string]string) error {
	if m.WriteErr != nil {
		return fmt.Errorf("%w: %v", issue.ErrIOFailure, m.WriteErr)
	}
	m.Vars = cloneVars(vars)
	m.Writes++
	return nil
}
