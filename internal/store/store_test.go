// SPDX-License-Identifier: MPL-2.0

package store

import (
	"errors"
	"maps"
	"testing"

	"github.com/zxygithub/evm/internal/issue"

	"pgregory.net/rapid"
)

func newTestStore(t *testing.T, seed map[string]string) (*Store, *MemoryStorage) {
	t.Helper()
	mem := NewMemoryStorage(seed)
	return Open(mem), mem
}

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	s, mem := newTestStore(t, nil)
	if err := s.Set("API_KEY", "abc123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get("API_KEY")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "abc123" {
		t.Errorf("Get() = %q, want %q", got, "abc123")
	}
	if mem.Vars["API_KEY"] != "abc123" {
		t.Errorf("persisted value = %q, want %q", mem.Vars["API_KEY"], "abc123")
	}
	if mem.Writes != 1 {
		t.Errorf("Writes = %d, want 1", mem.Writes)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, map[string]string{"A": "1"})
	if err := s.Set("A", "2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := s.Get("A"); got != "2" {
		t.Errorf("Get() = %q, want %q", got, "2")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_SetEmptyValue(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, nil)
	if err := s.Set("EMPTY", ""); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get("EMPTY")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
	if !s.Exists("EMPTY") {
		t.Error("Exists() = false for a key with an empty value")
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, nil)
	_, err := s.Get("MISSING")
	if !errors.Is(err, issue.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}

	var nf *VariableNotFoundError
	if !errors.As(err, &nf) || nf.Key != "MISSING" {
		t.Errorf("Get() error = %#v, want VariableNotFoundError{Key: MISSING}", err)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s, mem := newTestStore(t, map[string]string{"A": "1", "B": "2"})
	if err := s.Delete("A"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if s.Exists("A") {
		t.Error("A still exists after Delete()")
	}
	if _, ok := mem.Vars["A"]; ok {
		t.Error("A still persisted after Delete()")
	}

	err := s.Delete("A")
	if !errors.Is(err, issue.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if mem.Writes != 1 {
		t.Errorf("Writes = %d, want 1 (failed delete must not persist)", mem.Writes)
	}
}

func TestStore_Rename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seed     map[string]string
		oldKey   string
		newKey   string
		wantErr  error
		wantVars map[string]string
	}{
		{
			name:     "moves value",
			seed:     map[string]string{"OLD": "v"},
			oldKey:   "OLD",
			newKey:   "NEW",
			wantVars: map[string]string{"NEW": "v"},
		},
		{
			name:     "missing source",
			seed:     map[string]string{"A": "1"},
			oldKey:   "OLD",
			newKey:   "NEW",
			wantErr:  issue.ErrNotFound,
			wantVars: map[string]string{"A": "1"},
		},
		{
			name:     "target exists",
			seed:     map[string]string{"OLD": "1", "NEW": "2"},
			oldKey:   "OLD",
			newKey:   "NEW",
			wantErr:  issue.ErrAlreadyExists,
			wantVars: map[string]string{"OLD": "1", "NEW": "2"},
		},
		{
			name:     "same key is taken",
			seed:     map[string]string{"A": "1"},
			oldKey:   "A",
			newKey:   "A",
			wantErr:  issue.ErrAlreadyExists,
			wantVars: map[string]string{"A": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newTestStore(t, tt.seed)
			err := s.Rename(tt.oldKey, tt.newKey)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Rename() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Rename() error = %v, want %v", err, tt.wantErr)
			}
			if got := s.Snapshot(); !maps.Equal(got, tt.wantVars) {
				t.Errorf("Snapshot() = %v, want %v", got, tt.wantVars)
			}
		})
	}
}

func TestStore_Copy(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, map[string]string{"SRC": "v", "DST": "old"})
	if err := s.Copy("SRC", "DST"); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	want := map[string]string{"SRC": "v", "DST": "v"}
	if got := s.Snapshot(); !maps.Equal(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}

	if err := s.Copy("NOPE", "X"); !errors.Is(err, issue.ErrNotFound) {
		t.Errorf("Copy() of missing key error = %v, want ErrNotFound", err)
	}
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	s, mem := newTestStore(t, map[string]string{"A": "1", "dev:B": "2"})
	n, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() = %d, want 2", n)
	}
	if s.Len() != 0 || len(mem.Vars) != 0 {
		t.Errorf("store not empty after Clear(): %v", mem.Vars)
	}

	n, err = s.Clear()
	if err != nil || n != 0 {
		t.Errorf("Clear() on empty store = (%d, %v), want (0, nil)", n, err)
	}
	if mem.Writes != 1 {
		t.Errorf("Writes = %d, want 1 (clearing an empty store is a no-op)", mem.Writes)
	}
}

func TestStore_ReplaceAndMerge(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, map[string]string{"A": "1", "B": "2"})
	if err := s.Merge(map[string]string{"B": "20", "C": "30"}); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	want := map[string]string{"A": "1", "B": "20", "C": "30"}
	if got := s.Snapshot(); !maps.Equal(got, want) {
		t.Errorf("after Merge() = %v, want %v", got, want)
	}

	if err := s.Replace(map[string]string{"Z": "26"}); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	want = map[string]string{"Z": "26"}
	if got := s.Snapshot(); !maps.Equal(got, want) {
		t.Errorf("after Replace() = %v, want %v", got, want)
	}
}

func TestStore_FailedPersistKeepsMapping(t *testing.T) {
	t.Parallel()

	seed := map[string]string{"A": "1", "dev:B": "2"}
	s, mem := newTestStore(t, seed)
	mem.WriteErr = errors.New("disk full")

	ops := map[string]func() error{
		"set":          func() error { return s.Set("A", "changed") },
		"delete":       func() error { return s.Delete("A") },
		"rename":       func() error { return s.Rename("A", "X") },
		"copy":         func() error { return s.Copy("A", "X") },
		"clear":        func() error { _, err := s.Clear(); return err },
		"merge":        func() error { return s.Merge(map[string]string{"A": "m"}) },
		"replace":      func() error { return s.Replace(map[string]string{}) },
		"delete-group": func() error { _, err := s.DeleteGroup("dev"); return err },
		"move-group":   func() error { _, err := s.MoveToGroup("A", "prod"); return err },
	}

	for name, op := range ops {
		err := op()
		if !errors.Is(err, issue.ErrIOFailure) {
			t.Errorf("%s: error = %v, want ErrIOFailure", name, err)
		}
		if got := s.Snapshot(); !maps.Equal(got, seed) {
			t.Errorf("%s: mapping changed after failed persist: %v", name, got)
		}
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, map[string]string{"A": "1"})
	snap := s.Snapshot()
	snap["A"] = "mutated"
	if got, _ := s.Get("A"); got != "1" {
		t.Errorf("Get() = %q after mutating snapshot, want %q", got, "1")
	}
}

func TestStore_Properties(t *testing.T) {
	t.Parallel()

	keyGen := rapid.StringMatching(`[A-Za-z_][A-Za-z0-9_:]{0,15}`)

	rapid.Check(t, func(rt *rapid.T) {
		s := Open(NewMemoryStorage(nil))
		key := keyGen.Draw(rt, "key")
		value := rapid.String().Draw(rt, "value")

		if err := s.Set(key, value); err != nil {
			rt.Fatalf("Set() error = %v", err)
		}
		got, err := s.Get(key)
		if err != nil || got != value {
			rt.Fatalf("Get() = (%q, %v), want (%q, nil)", got, err, value)
		}

		if err := s.Delete(key); err != nil {
			rt.Fatalf("Delete() error = %v", err)
		}
		if err := s.Delete(key); !errors.Is(err, issue.ErrNotFound) {
			rt.Fatalf("second Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_RenameProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.MapOf(rapid.StringMatching(`[A-Z]{1,3}`), rapid.String()).Draw(rt, "seed")
		s := Open(NewMemoryStorage(seed))
		oldKey := rapid.StringMatching(`[A-Z]{1,3}`).Draw(rt, "old")
		newKey := rapid.StringMatching(`[A-Z]{1,3}`).Draw(rt, "new")

		oldValue, hadOld := seed[oldKey]
		_, hadNew := seed[newKey]

		err := s.Rename(oldKey, newKey)
		switch {
		case !hadOld:
			if !errors.Is(err, issue.ErrNotFound) {
				rt.Fatalf("Rename() error = %v, want ErrNotFound", err)
			}
		case hadNew:
			if !errors.Is(err, issue.ErrAlreadyExists) {
				rt.Fatalf("Rename() error = %v, want ErrAlreadyExists", err)
			}
		default:
			if err != nil {
				rt.Fatalf("Rename() error = %v", err)
			}
			if s.Exists(oldKey) {
				rt.Fatalf("old key %q still present", oldKey)
			}
			if got, _ := s.Get(newKey); got != oldValue {
				rt.Fatalf("Get(%q) = %q, want %q", newKey, got, oldValue)
			}
			if s.Len() != len(seed) {
				rt.Fatalf("Len() = %d, want %d", s.Len(), len(seed))
			}
			return
		}
		if got := s.Snapshot(); !maps.Equal(got, seed) {
			rt.Fatalf("failed Rename() changed mapping: %v", got)
		}
	})
}
