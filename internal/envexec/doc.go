// SPDX-License-Identifier: MPL-2.0

// Package envexec hands stored variables to other programs.
//
// Launcher replaces the current process with a command whose environment is the
// ambient environment overlaid with the store. VirtualRunner runs a shell snippet
// in the embedded mvdan.cc/sh interpreter instead. EnvWriter copies variables into
// the current process environment.
package envexec
