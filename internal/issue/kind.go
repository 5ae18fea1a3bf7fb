// SPDX-License-Identifier: MPL-2.0

package issue

import "errors"

// Kind classifies a failure. The zero value means the error is unclassified.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidFormat
	KindIOFailure
	KindCommandNotFound
	KindUserError
)

// Sentinel errors for each Kind. Packages wrap these with %w or typed errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrIOFailure       = errors.New("i/o failure")
	ErrCommandNotFound = errors.New("command not found")
	ErrUserError       = errors.New("operation not allowed")
)

var kindSentinels = []struct {
	kind Kind
	err  error
}{
	{KindNotFound, ErrNotFound},
	{KindAlreadyExists, ErrAlreadyExists},
	{KindInvalidFormat, ErrInvalidFormat},
	{KindIOFailure, ErrIOFailure},
	{KindCommandNotFound, ErrCommandNotFound},
	{KindUserError, ErrUserError},
}

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindIOFailure:
		return "IOFailure"
	case KindCommandNotFound:
		return "CommandNotFound"
	case KindUserError:
		return "UserError"
	default:
		return "Unknown"
	}
}

// KindOf returns the Kind of the first sentinel found in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}
	return KindUnknown
}

// IssueFor maps a Kind to the catalog entry that explains it, or 0 when none applies.
func IssueFor(k Kind) Id {
	switch k {
	case KindNotFound:
		return VariableNotFoundId
	case KindAlreadyExists:
		return VariableExistsId
	case KindInvalidFormat:
		return InvalidFormatId
	case KindIOFailure:
		return StorageFailedId
	case KindCommandNotFound:
		return CommandNotFoundId
	case KindUserError:
		return DefaultGroupProtectedId
	default:
		return 0
	}
}
