// SPDX-License-Identifier: MPL-2.0

package envexec

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/zxygithub/evm/internal/issue"
)

// ErrNoCommand is returned when Exec is called without a program.
var ErrNoCommand = fmt.Errorf("%w: no command specified", issue.ErrUserError)

type (
	// Launcher starts a program in place of the current process.
	Launcher struct {
		// LookPath resolves argv[0]. Defaults to exec.LookPath.
		LookPath func(file string) (string, error)
		// replace swaps the process image. It only returns on failure.
		replace func(path string, argv, environ []string) error
	}

	// CommandNotFoundError is returned when the program cannot be resolved.
	CommandNotFoundError struct {
		Name string
		Err  error
	}
)

// Error implements the error interface.
func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Name)
}

// Unwrap returns issue.ErrCommandNotFound for errors.Is() compatibility.
func (e *CommandNotFoundError) Unwrap() error { return issue.ErrCommandNotFound }

// NewLauncher returns a Launcher that uses the platform process replacement.
func NewLauncher() *Launcher {
	return &Launcher{LookPath: exec.LookPath, replace: replaceProcess}
}

// Exec runs argv with environ. On success it does not return.
func (l *Launcher) Exec(argv, environ []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}

	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(argv[0])
	if err != nil {
		return &CommandNotFoundError{Name: argv[0], Err: err}
	}

	replace := l.replace
	if replace == nil {
		replace = replaceProcess
	}
	if err := replace(path, argv, environ); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return &CommandNotFoundError{Name: argv[0], Err: err}
		}
		return fmt.Errorf("%w: exec %s: %v", issue.ErrIOFailure, argv[0], err)
	}
	return nil
}
