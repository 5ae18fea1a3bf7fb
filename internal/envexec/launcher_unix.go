// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package envexec

import "syscall"

func replaceProcess(path string, argv, environ []string) error {
	return syscall.Exec(path, argv, environ)
}
