// SPDX-License-Identifier: MPL-2.0

package codec

import (
	"bytes"
	"testing"
)

func TestEncodeShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := EncodeShell(&buf, map[string]string{"B": "2", "A": "1"}); err != nil {
		t.Fatalf("EncodeShell() error: %v", err)
	}
	want := "#!/bin/bash\n\nexport A=1\nexport B=2\n"
	if buf.String() != want {
		t.Errorf("EncodeShell() = %q, want %q", buf.String(), want)
	}
}

func TestValidateShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		vars         map[string]string
		wantProblems bool
	}{
		{"plain identifiers", map[string]string{"API_KEY": "abc123", "PATH_EXTRA": "/opt/bin"}, false},
		{"empty store", map[string]string{}, false},
		{"grouped name", map[string]string{"dev:API_KEY": "abc"}, true},
		{"value with space", map[string]string{"GREETING": "hello world"}, true},
		{"value with metacharacters", map[string]string{"BAD": "a;(b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := EncodeShell(&buf, tt.vars); err != nil {
				t.Fatalf("EncodeShell() error: %v", err)
			}
			problems := ValidateShell(buf.Bytes())
			if (len(problems) > 0) != tt.wantProblems {
				t.Errorf("ValidateShell() = %v, wantProblems %v\nscript:\n%s", problems, tt.wantProblems, buf.String())
			}
		})
	}
}
