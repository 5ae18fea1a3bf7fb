// SPDX-License-Identifier: MPL-2.0

package types

import "strings"

const (
	// DefaultGroup is the implicit namespace of keys that carry no "group:" prefix.
	DefaultGroup GroupName = "default"

	// GroupSeparator separates a group name from a variable name inside a stored key.
	GroupSeparator = ":"
)

// GroupName names a namespace encoded as a "group:" prefix on stored keys.
// The empty group means "no group" and qualifies names unchanged.
type GroupName string

// String returns the group name.
func (g GroupName) String() string { return string(g) }

// IsDefault reports whether g is the reserved default namespace.
func (g GroupName) IsDefault() bool { return g == DefaultGroup }

// Prefix returns the key prefix that marks membership in g ("dev" -> "dev:").
func (g GroupName) Prefix() string { return string(g) + GroupSeparator }

// Qualify returns the stored key for name inside g. An empty group returns name as-is.
func (g GroupName) Qualify(name string) string {
	if g == "" {
		return name
	}
	return g.Prefix() + name
}

// Owns reports whether key carries g's exact prefix.
func (g GroupName) Owns(key string) bool { return strings.HasPrefix(key, g.Prefix()) }

// Strip removes g's prefix from key when present.
func (g GroupName) Strip(key string) string { return strings.TrimPrefix(key, g.Prefix()) }

// SplitKey splits a stored key on its first separator. Keys without a separator
// belong to DefaultGroup and are returned whole as the name.
func SplitKey(key string) (GroupName, string) {
	group, name, found := strings.Cut(key, GroupSeparator)
	if !found {
		return DefaultGroup, key
	}
	return GroupName(group), name
}

// IsGrouped reports whether key is encoded with a group prefix.
func IsGrouped(key string) bool { return strings.Contains(key, GroupSeparator) }
