// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers: Must* wrappers that fail the test on
// error, home directory overrides, and a controllable clock for time-stamped output.
package testutil
