// SPDX-License-Identifier: MPL-2.0

package envexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// IO carries the standard streams of a virtual run. Nil streams are empty or discarded.
	IO struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// VirtualRunner runs shell snippets in the embedded interpreter.
	VirtualRunner struct {
		// Dir is the working directory. Empty means the current directory.
		Dir string
		// Args are exposed as positional parameters ($1, $2, ...).
		Args []string
	}
)

// Run parses and executes script with environ as its only environment. A non-zero
// exit status is returned as the ExitCode with a nil error; parse or interpreter
// failures are returned as errors with ExitFailure.
func (r VirtualRunner) Run(ctx context.Context, script string, environ []string, stdio IO) (types.ExitCode, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "evm")
	if err != nil {
		return types.ExitFailure, fmt.Errorf("%w: failed to parse script: %v", issue.ErrUserError, err)
	}

	if stdio.Stdout == nil {
		stdio.Stdout = io.Discard
	}
	if stdio.Stderr == nil {
		stdio.Stderr = io.Discard
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(stdio.Stdin, stdio.Stdout, stdio.Stderr),
	}
	if r.Dir != "" {
		opts = append(opts, interp.Dir(r.Dir))
	}
	// "--" ends option parsing so args like "-v" stay positional.
	if len(r.Args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, r.Args...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return types.ExitFailure, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return types.ExitCode(exitStatus), nil
		}
		return types.ExitFailure, fmt.Errorf("script execution failed: %w", err)
	}
	return types.ExitSuccess, nil
}
