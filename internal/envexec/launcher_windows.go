// SPDX-License-Identifier: MPL-2.0

//go:build windows

package envexec

import (
	"errors"
	"os"
	"os/exec"
)

// replaceProcess emulates exec on Windows: the child inherits stdio and the parent
// exits with the child's status.
func replaceProcess(path string, argv, environ []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = environ
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	os.Exit(0)
	return nil
}
