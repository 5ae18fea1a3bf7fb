// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"maps"
	"strings"
	"testing"

	"github.com/zxygithub/evm/pkg/types"
)

func TestVariableLifecycle(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)

	if res := h.mustRun("set", "API_KEY", "abc123"); !strings.Contains(res.stdout, "Set: API_KEY=abc123") {
		t.Errorf("set stdout = %q", res.stdout)
	}
	if res := h.mustRun("get", "API_KEY"); res.stdout != "abc123\n" {
		t.Errorf("get stdout = %q, want %q", res.stdout, "abc123\n")
	}
	if res := h.mustRun("rename", "API_KEY", "TOKEN"); !strings.Contains(res.stdout, "Renamed: API_KEY -> TOKEN") {
		t.Errorf("rename stdout = %q", res.stdout)
	}
	if res := h.mustRun("copy", "TOKEN", "TOKEN_BAK"); !strings.Contains(res.stdout, "Copied: TOKEN -> TOKEN_BAK") {
		t.Errorf("copy stdout = %q", res.stdout)
	}
	if res := h.mustRun("delete", "TOKEN"); !strings.Contains(res.stdout, "Deleted: TOKEN") {
		t.Errorf("delete stdout = %q", res.stdout)
	}

	want := map[string]string{"TOKEN_BAK": "abc123"}
	if got := h.stored(); !maps.Equal(got, want) {
		t.Errorf("stored = %v, want %v", got, want)
	}
}

func TestVariableErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"get missing", []string{"get", "NOPE"}, "environment variable 'NOPE' not found"},
		{"delete missing", []string{"delete", "NOPE"}, "environment variable 'NOPE' not found"},
		{"rename missing", []string{"rename", "NOPE", "X"}, "environment variable 'NOPE' not found"},
		{"rename onto existing", []string{"rename", "A", "B"}, "environment variable 'B' already exists"},
		{"copy missing", []string{"copy", "NOPE", "X"}, "environment variable 'NOPE' not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newCLIHarness(t)
			h.mustRun("set", "A", "1")
			h.mustRun("set", "B", "2")

			res := h.run(tt.args...)
			if res.code != types.ExitFailure {
				t.Errorf("exit code = %d, want %d", res.code, types.ExitFailure)
			}
			if !strings.Contains(res.stderr, "Error:") || !strings.Contains(res.stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", res.stderr, tt.wantStderr)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want empty", res.stdout)
			}
			want := map[string]string{"A": "1", "B": "2"}
			if got := h.stored(); !maps.Equal(got, want) {
				t.Errorf("stored = %v, want %v", got, want)
			}
		})
	}
}

func TestCopyOverwritesDestination(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	h.mustRun("set", "A", "1")
	h.mustRun("set", "B", "2")
	h.mustRun("copy", "A", "B")

	if res := h.mustRun("get", "B"); res.stdout != "1\n" {
		t.Errorf("get B = %q, want %q", res.stdout, "1\n")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)

	if res := h.mustRun("clear"); !strings.Contains(res.stdout, "No environment variables to clear") {
		t.Errorf("clear on empty store stdout = %q", res.stdout)
	}

	h.mustRun("set", "A", "1")
	if res := h.mustRun("clear"); !strings.Contains(res.stdout, "All environment variables cleared") {
		t.Errorf("clear stdout = %q", res.stdout)
	}
	if got := h.stored(); len(got) != 0 {
		t.Errorf("stored = %v, want empty", got)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	seed := [][2]string{
		{"API_KEY", "abc"},
		{"DEBUG", "true"},
		{"dev:DB_HOST", "localhost"},
		{"dev:DB_PORT", "5432"},
	}

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "all",
			args:    []string{"list"},
			want:    []string{"Environment Variables:", "API_KEY     = abc", "dev:DB_HOST = localhost", "Total: 4 variables"},
			notWant: []string{"(by group)"},
		},
		{
			name:    "pattern is case-insensitive",
			args:    []string{"list", "db_"},
			want:    []string{"dev:DB_HOST", "dev:DB_PORT", "Total: 2 variables"},
			notWant: []string{"API_KEY"},
		},
		{
			name:    "group",
			args:    []string{"list", "--group", "dev"},
			want:    []string{"dev:DB_HOST", "Total: 2 variables"},
			notWant: []string{"DEBUG"},
		},
		{
			name:    "group without prefix",
			args:    []string{"list", "-g", "dev", "--no-prefix"},
			want:    []string{"DB_HOST = localhost", "DB_PORT = 5432"},
			notWant: []string{"dev:"},
		},
		{
			name: "group takes precedence over pattern",
			args: []string{"list", "API", "--group", "dev"},
			want: []string{"dev:DB_HOST", "Total: 2 variables"},
		},
		{
			name: "show groups",
			args: []string{"list", "--show-groups"},
			want: []string{
				"Environment Variables (by group):",
				"[default]", "[dev]", "DB_HOST = localhost",
				"Total: 2 groups, 4 variables",
			},
		},
		{
			name: "missing group",
			args: []string{"list", "-g", "prod"},
			want: []string{"No environment variables in group 'prod'"},
		},
		{
			name: "no pattern match",
			args: []string{"list", "zzz"},
			want: []string{"No environment variables match pattern 'zzz'"},
		},
		{
			name: "listg",
			args: []string{"listg", "dev", "--no-prefix"},
			want: []string{"DB_HOST = localhost", "Total: 2 variables"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newCLIHarness(t)
			for _, kv := range seed {
				h.mustRun("set", kv[0], kv[1])
			}

			res := h.mustRun(tt.args...)
			for _, want := range tt.want {
				if !strings.Contains(res.stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, res.stdout)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(res.stdout, notWant) {
					t.Errorf("stdout should not contain %q:\n%s", notWant, res.stdout)
				}
			}
		})
	}
}

func TestListEmptyStore(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	if res := h.mustRun("list"); res.stdout != "No environment variables set\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	h.mustRun("set", "API_URL", "https://example.com")
	h.mustRun("set", "HOMEPAGE", "https://api.example.com")

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "keys only",
			args:    []string{"search", "api"},
			want:    []string{"Search results for 'api':", "API_URL", "Total: 1 matches"},
			notWant: []string{"HOMEPAGE"},
		},
		{
			name: "keys and values",
			args: []string{"search", "api", "--value"},
			want: []string{"API_URL", "HOMEPAGE", "Total: 2 matches"},
		},
		{
			name: "no match in keys",
			args: []string{"search", "nope"},
			want: []string{"No environment variables match 'nope' in keys"},
		},
		{
			name: "no match in keys and values",
			args: []string{"search", "nope", "--value"},
			want: []string{"No environment variables match 'nope' in keys and values"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.mustRun(tt.args...)
			for _, want := range tt.want {
				if !strings.Contains(res.stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, res.stdout)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(res.stdout, notWant) {
					t.Errorf("stdout should not contain %q:\n%s", notWant, res.stdout)
				}
			}
		})
	}
}

func TestArgumentValidation(t *testing.T) {
	t.Parallel()

	h := newCLIHarness(t)
	res := h.run("set", "ONLY_KEY")
	if res.code != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", res.code, types.ExitFailure)
	}
	if got := h.stored(); len(got) != 0 {
		t.Errorf("stored = %v, want empty", got)
	}
}
