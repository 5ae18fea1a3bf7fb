// SPDX-License-Identifier: MPL-2.0

package codec

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// EncodeEnv writes one KEY=VALUE line per variable, sorted by key. Values are
// written literally without quoting or escaping.
func EncodeEnv(w io.Writer, vars map[string]string) error {
	return writeSortedLines(w, "", vars)
}

// DecodeEnv parses dotenv content:
//   - blank lines and lines starting with # are skipped
//   - lines without '=' or with an empty key are skipped
//   - the line splits on the first '='; key and value are trimmed
//   - one layer of matching surrounding quotes (' or ") is removed from the value
//
// Later lines override earlier ones for the same key.
func DecodeEnv(data []byte) map[string]string {
	vars := make(map[string]string)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		vars[key] = unquoteEnvValue(strings.TrimSpace(value))
	}

	return vars
}

func unquoteEnvValue(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

func writeSortedLines(w io.Writer, prefix string, vars map[string]string) error {
	bw := bufio.NewWriter(w)
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if _, err := fmt.Fprintf(bw, "%s%s=%s\n", prefix, key, vars[key]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
