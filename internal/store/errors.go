// SPDX-License-Identifier: MPL-2.0

package store

import (
	"fmt"

	"github.com/zxygithub/evm/internal/issue"
)

type (
	// VariableNotFoundError is returned when a key is absent.
	VariableNotFoundError struct {
		Key string
	}

	// VariableExistsError is returned when a rename target is already present.
	VariableExistsError struct {
		Key string
	}

	// GroupNotFoundError is returned when no key carries the group prefix.
	GroupNotFoundError struct {
		Group string
	}

	// DefaultGroupError is returned when deleting the reserved default namespace.
	DefaultGroupError struct{}
)

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("environment variable '%s' not found", e.Key)
}

// Unwrap returns issue.ErrNotFound for errors.Is() compatibility.
func (e *VariableNotFoundError) Unwrap() error { return issue.ErrNotFound }

func (e *VariableExistsError) Error() string {
	return fmt.Sprintf("environment variable '%s' already exists", e.Key)
}

// Unwrap returns issue.ErrAlreadyExists for errors.Is() compatibility.
func (e *VariableExistsError) Unwrap() error { return issue.ErrAlreadyExists }

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("group '%s' not found or has no variables", e.Group)
}

// Unwrap returns issue.ErrNotFound for errors.Is() compatibility.
func (e *GroupNotFoundError) Unwrap() error { return issue.ErrNotFound }

func (e *DefaultGroupError) Error() string {
	return "cannot delete default namespace; use 'clear' to remove all variables"
}

// Unwrap returns issue.ErrUserError for errors.Is() compatibility.
func (e *DefaultGroupError) Unwrap() error { return issue.ErrUserError }
