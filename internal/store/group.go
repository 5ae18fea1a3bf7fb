// SPDX-License-Identifier: MPL-2.0

package store

import (
	"maps"
	"slices"

	"github.com/zxygithub/evm/pkg/types"
)

// GroupCount is a group name with the number of keys carrying its prefix.
type GroupCount struct {
	Group types.GroupName
	Count int
}

// SetGrouped stores key inside group. An empty group behaves like Set.
func (s *Store) SetGrouped(group types.GroupName, key, value string) error {
	return s.Set(group.Qualify(key), value)
}

// GetGrouped looks up group:key, then falls back to the bare key when group is
// non-empty. A miss reports the composite name.
func (s *Store) GetGrouped(group types.GroupName, key string) (string, error) {
	full := group.Qualify(key)
	if value, ok := s.vars[full]; ok {
		return value, nil
	}
	if group != "" {
		if value, ok := s.vars[key]; ok {
			return value, nil
		}
	}
	return "", &VariableNotFoundError{Key: full}
}

// DeleteGrouped removes group:key. There is no bare-key fallback.
func (s *Store) DeleteGrouped(group types.GroupName, key string) error {
	return s.Delete(group.Qualify(key))
}

// Groups returns every distinct group prefix with its member count, sorted by name.
// Keys without a separator are not reported; an empty result means every variable
// lives in the default namespace.
func (s *Store) Groups() []GroupCount {
	counts := make(map[types.GroupName]int)
	for key := range s.vars {
		if !types.IsGrouped(key) {
			continue
		}
		group, _ := types.SplitKey(key)
		counts[group]++
	}

	out := make([]GroupCount, 0, len(counts))
	for _, group := range slices.Sorted(maps.Keys(counts)) {
		out = append(out, GroupCount{Group: group, Count: counts[group]})
	}
	return out
}

// DeleteGroup removes every key carrying group's prefix in one persist and returns
// how many were removed. The default group is protected.
func (s *Store) DeleteGroup(group types.GroupName) (int, error) {
	if group.IsDefault() {
		return 0, &DefaultGroupError{}
	}

	removed := 0
	err := s.mutate("delete-group", func(next map[string]string) error {
		for key := range next {
			if group.Owns(key) {
				delete(next, key)
				removed++
			}
		}
		if removed == 0 {
			return &GroupNotFoundError{Group: group.String()}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// MoveToGroup moves key into newGroup and returns the new key. key is looked up
// verbatim, so the bare name of an already-grouped variable reports not found.
func (s *Store) MoveToGroup(key string, newGroup types.GroupName) (string, error) {
	newKey := newGroup.Prefix() + key
	err := s.mutate("move-group", func(next map[string]string) error {
		value, ok := next[key]
		if !ok {
			return &VariableNotFoundError{Key: key}
		}
		delete(next, key)
		next[newKey] = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return newKey, nil
}
