// SPDX-License-Identifier: MPL-2.0

package store

import (
	"maps"
	"slices"
	"strings"

	"github.com/zxygithub/evm/pkg/types"
)

type (
	// Variable is one stored pair. Key may be a display key (see ListOptions.StripPrefix).
	Variable struct {
		Key   string
		Value string
	}

	// ListOptions filters List and ListGrouped. Group takes precedence over Pattern.
	ListOptions struct {
		// Pattern is a case-insensitive substring matched against keys.
		Pattern string
		// Group keeps only keys with the exact "group:" prefix.
		Group types.GroupName
		// StripPrefix removes the group prefix from returned keys. It only applies
		// together with Group and never changes stored keys.
		StripPrefix bool
	}

	// GroupListing is one section of a grouped listing.
	GroupListing struct {
		Group     types.GroupName
		Variables []Variable
	}
)

// List returns the filtered variables sorted by their displayed key.
func (s *Store) List(opts ListOptions) []Variable {
	filtered := s.filter(opts)

	if opts.StripPrefix && opts.Group != "" {
		stripped := make(map[string]string, len(filtered))
		for key, value := range filtered {
			stripped[opts.Group.Strip(key)] = value
		}
		filtered = stripped
	}
	return sortedVariables(filtered)
}

// ListGrouped partitions the filtered variables by group. Sections are sorted by
// group name, entries by name within the group; keys without a separator land in
// the default group.
func (s *Store) ListGrouped(opts ListOptions) []GroupListing {
	sections := make(map[types.GroupName]map[string]string)
	for key, value := range s.filter(opts) {
		group, name := types.SplitKey(key)
		if sections[group] == nil {
			sections[group] = make(map[string]string)
		}
		sections[group][name] = value
	}

	out := make([]GroupListing, 0, len(sections))
	for _, group := range slices.Sorted(maps.Keys(sections)) {
		out = append(out, GroupListing{Group: group, Variables: sortedVariables(sections[group])})
	}
	return out
}

// Search returns variables whose key, or value when includeValues is set, contains
// pattern case-insensitively. There is no result limit.
func (s *Store) Search(pattern string, includeValues bool) []Variable {
	needle := strings.ToLower(pattern)
	matches := make(map[string]string)
	for key, value := range s.vars {
		if strings.Contains(strings.ToLower(key), needle) ||
			(includeValues && strings.Contains(strings.ToLower(value), needle)) {
			matches[key] = value
		}
	}
	return sortedVariables(matches)
}

// Filter returns a copy of the variables selected by opts, keyed by stored key.
func (s *Store) Filter(opts ListOptions) map[string]string {
	return s.filter(opts)
}

func (s *Store) filter(opts ListOptions) map[string]string {
	out := make(map[string]string)
	switch {
	case opts.Group != "":
		for key, value := range s.vars {
			if opts.Group.Owns(key) {
				out[key] = value
			}
		}
	case opts.Pattern != "":
		needle := strings.ToLower(opts.Pattern)
		for key, value := range s.vars {
			if strings.Contains(strings.ToLower(key), needle) {
				out[key] = value
			}
		}
	default:
		maps.Copy(out, s.vars)
	}
	return out
}

func sortedVariables(vars map[string]string) []Variable {
	out := make([]Variable, 0, len(vars))
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		out = append(out, Variable{Key: key, Value: vars[key]})
	}
	return out
}
