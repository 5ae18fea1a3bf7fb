// SPDX-License-Identifier: MPL-2.0

package envexec

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/pkg/types"
)

func TestVirtualRunner_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		environ  []string
		args     []string
		wantOut  string
		wantCode types.ExitCode
	}{
		{
			name:    "sees stored variables",
			script:  `echo "$API_KEY"`,
			environ: []string{"API_KEY=abc123"},
			wantOut: "abc123\n",
		},
		{
			name:     "propagates exit status",
			script:   "exit 3",
			wantCode: 3,
		},
		{
			name:    "positional args",
			script:  `echo "$1 $2"`,
			args:    []string{"-v", "two"},
			wantOut: "-v two\n",
		},
		{
			name:    "only the given environment",
			script:  `echo "[${NOT_GIVEN:-unset}]"`,
			wantOut: "[unset]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			r := VirtualRunner{Args: tt.args}
			code, err := r.Run(context.Background(), tt.script, tt.environ, IO{Stdout: &stdout})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("Run() code = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestVirtualRunner_ParseError(t *testing.T) {
	t.Parallel()

	code, err := VirtualRunner{}.Run(context.Background(), "if then fi (", nil, IO{})
	if !errors.Is(err, issue.ErrUserError) {
		t.Fatalf("Run() error = %v, want ErrUserError", err)
	}
	if code != types.ExitFailure {
		t.Errorf("Run() code = %d, want %d", code, types.ExitFailure)
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error %q should mention parsing", err)
	}
}

func TestVirtualRunner_Dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout bytes.Buffer
	if _, err := (VirtualRunner{Dir: dir}).Run(context.Background(), "pwd", nil, IO{Stdout: &stdout}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != dir {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
}
