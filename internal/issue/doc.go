// SPDX-License-Identifier: MPL-2.0

// Package issue provides the error vocabulary shared by every evm package and the
// user-facing rendering of failures.
//
// Error kinds (not found, already exists, invalid format, I/O failure, command not
// found, user error) are exposed as sentinel errors so callers can classify failures
// with errors.Is or KindOf. ActionableError adds operation, resource and remediation
// hints for the CLI layer, and the issue catalog carries Markdown guidance rendered
// with glamour.
package issue
