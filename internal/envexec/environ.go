// SPDX-License-Identifier: MPL-2.0

package envexec

import (
	"maps"
	"slices"
	"strings"
)

// BuildEnviron overlays vars on ambient ("KEY=VALUE" entries) and returns the result
// sorted by key. Stored values win on collision. Ambient entries without '=' are dropped.
func BuildEnviron(ambient []string, vars map[string]string) []string {
	merged := make(map[string]string, len(ambient)+len(vars))
	for _, entry := range ambient {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		merged[key] = value
	}
	maps.Copy(merged, vars)

	out := make([]string, 0, len(merged))
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		out = append(out, key+"="+merged[key])
	}
	return out
}
