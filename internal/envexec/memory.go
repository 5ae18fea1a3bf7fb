// SPDX-License-Identifier: MPL-2.0

package envexec

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// MemoryPrefix marks variables copied into the process environment.
const MemoryPrefix = "EVM:"

// EnvWriter copies variables into a process environment.
type EnvWriter struct {
	// Setenv defaults to os.Setenv.
	Setenv func(key, value string) error
}

// Apply sets every variable whose key starts with filterPrefix (all when empty),
// prefixing names with MemoryPrefix when addPrefix is set. It returns the number
// of variables written and stops at the first failure.
func (w EnvWriter) Apply(vars map[string]string, filterPrefix string, addPrefix bool) (int, error) {
	setenv := w.Setenv
	if setenv == nil {
		setenv = os.Setenv
	}

	n := 0
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if filterPrefix != "" && !strings.HasPrefix(key, filterPrefix) {
			continue
		}
		name := key
		if addPrefix {
			name = MemoryPrefix + key
		}
		if err := setenv(name, vars[key]); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
