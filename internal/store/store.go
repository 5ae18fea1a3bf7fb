// SPDX-License-Identifier: MPL-2.0

package store

import (
	"io"
	"maps"

	"github.com/charmbracelet/log"
)

type (
	// Store is the in-memory variable mapping backed by a Storage.
	// It assumes a single writer; it is not safe for concurrent use.
	Store struct {
		storage Storage
		vars    map[string]string
		logger  *log.Logger
	}

	// Option customizes a Store.
	Option func(*Store)
)

// WithLogger sets the logger used for mutation diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open loads the mapping from storage.
func Open(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.vars = storage.Read()
	if s.vars == nil {
		s.vars = map[string]string{}
	}
	return s
}

// Path reports where the mapping is persisted.
func (s *Store) Path() string { return s.storage.Path() }

// Len returns the number of stored variables.
func (s *Store) Len() int { return len(s.vars) }

// Snapshot returns a copy of the full mapping.
func (s *Store) Snapshot() map[string]string { return cloneVars(s.vars) }

// Set upserts key.
func (s *Store) Set(key, value string) error {
	return s.mutate("set", func(next map[string]string) error {
		next[key] = value
		return nil
	})
}

// Get returns the value of key.
func (s *Store) Get(key string) (string, error) {
	value, ok := s.vars[key]
	if !ok {
		return "", &VariableNotFoundError{Key: key}
	}
	return value, nil
}

// Exists reports whether key is stored.
func (s *Store) Exists(key string) bool {
	_, ok := s.vars[key]
	return ok
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	return s.mutate("delete", func(next map[string]string) error {
		if _, ok := next[key]; !ok {
			return &VariableNotFoundError{Key: key}
		}
		delete(next, key)
		return nil
	})
}

// Rename moves the value of oldKey to newKey. newKey must not exist.
func (s *Store) Rename(oldKey, newKey string) error {
	return s.mutate("rename", func(next map[string]string) error {
		value, ok := next[oldKey]
		if !ok {
			return &VariableNotFoundError{Key: oldKey}
		}
		if _, taken := next[newKey]; taken {
			return &VariableExistsError{Key: newKey}
		}
		delete(next, oldKey)
		next[newKey] = value
		return nil
	})
}

// Copy duplicates srcKey into dstKey, overwriting dstKey when present.
func (s *Store) Copy(srcKey, dstKey string) error {
	return s.mutate("copy", func(next map[string]string) error {
		value, ok := next[srcKey]
		if !ok {
			return &VariableNotFoundError{Key: srcKey}
		}
		next[dstKey] = value
		return nil
	})
}

// Clear removes every variable and returns how many were removed.
// An already-empty store is left untouched.
func (s *Store) Clear() (int, error) {
	n := len(s.vars)
	if n == 0 {
		return 0, nil
	}
	err := s.mutate("clear", func(next map[string]string) error {
		clear(next)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Replace discards the mapping and installs vars.
func (s *Store) Replace(vars map[string]string) error {
	return s.mutate("replace", func(next map[string]string) error {
		clear(next)
		maps.Copy(next, vars)
		return nil
	})
}

// Merge upserts every pair of vars; incoming values win on collision.
func (s *Store) Merge(vars map[string]string) error {
	return s.mutate("merge", func(next map[string]string) error {
		maps.Copy(next, vars)
		return nil
	})
}

// mutate applies fn to a copy of the mapping, persists the copy and swaps it in.
// When fn or the write fails the current mapping is kept.
func (s *Store) mutate(op string, fn func(next map[string]string) error) error {
	next := cloneVars(s.vars)
	if err := fn(next); err != nil {
		return err
	}
	if err := s.storage.Write(next); err != nil {
		s.logger.Debug("persist failed, mapping unchanged", "op", op, "error", err)
		return err
	}
	s.vars = next
	s.logger.Debug("mutation committed", "op", op, "variables", len(next))
	return nil
}

func cloneVars(vars map[string]string) map[string]string {
	out := make(map[string]string, len(vars))
	maps.Copy(out, vars)
	return out
}
