// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"not found", fmt.Errorf("variable %q: %w", "A", ErrNotFound), KindNotFound},
		{"already exists", ErrAlreadyExists, KindAlreadyExists},
		{"invalid format", fmt.Errorf("decode: %w", ErrInvalidFormat), KindInvalidFormat},
		{"io failure", fmt.Errorf("write: %w", ErrIOFailure), KindIOFailure},
		{"command not found", ErrCommandNotFound, KindCommandNotFound},
		{"user error", ErrUserError, KindUserError},
		{"wrapped in actionable", NewErrorContext().WithOperation("get variable").Wrap(ErrNotFound).BuildError(), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestIssueFor_CoversEveryKind(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindNotFound, KindAlreadyExists, KindInvalidFormat, KindIOFailure, KindCommandNotFound, KindUserError} {
		id := IssueFor(k)
		if id == 0 {
			t.Errorf("IssueFor(%s) = 0, want a catalog id", k)
			continue
		}
		if Get(id) == nil {
			t.Errorf("IssueFor(%s) = %d, which is not in the catalog", k, id)
		}
	}
	if IssueFor(KindUnknown) != 0 {
		t.Error("IssueFor(KindUnknown) should be 0")
	}
}
