// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/internal/loader"
	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/pkg/types"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer: the issue catalog entry explaining it and a pre-styled message
// printed in place of the plain error text.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// exitCodeFor maps an error to the process status: the carried code of an
// ExitError, 127 for a missing program, 1 otherwise.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if issue.KindOf(err) == issue.KindCommandNotFound {
		return types.ExitCommandNotFound
	}
	return types.ExitFailure
}

// issueIDFor picks the catalog entry that explains err.
func issueIDFor(err error) issue.Id {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.IssueID != 0 {
		return svcErr.IssueID
	}
	var fileErr *loader.FileNotFoundError
	if errors.As(err, &fileErr) {
		return issue.FileNotFoundId
	}
	var groupErr *store.GroupNotFoundError
	if errors.As(err, &groupErr) {
		return issue.GroupNotFoundId
	}
	return issue.IssueFor(issue.KindOf(err))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.StyledMessage != "" {
		return svcErr.StyledMessage
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderError prints err with the "Error:" label. In verbose mode the issue
// catalog entry explaining it follows. Already-reported ExitErrors print nothing.
func renderError(stderr io.Writer, err error, verbose bool, stylePath string) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(stderr, ErrorStyle.Render("Error:")+" "+formatErrorForDisplay(err, verbose))
	if verbose {
		renderIssue(stderr, issueIDFor(err), stylePath)
	}
}

// renderWarning prints a non-fatal problem with the "Warning:" label.
func renderWarning(stderr io.Writer, err error, verbose bool) {
	fmt.Fprintln(stderr, WarningStyle.Render("Warning:")+" "+formatErrorForDisplay(err, verbose))
	if verbose {
		renderIssue(stderr, issueIDFor(err), "dark")
	}
}

// renderIssue renders the catalog entry for id, if any.
func renderIssue(stderr io.Writer, id issue.Id, stylePath string) {
	if id == 0 {
		return
	}
	catalogEntry := issue.Get(id)
	if catalogEntry == nil {
		return
	}
	rendered, err := catalogEntry.Render(stylePath)
	if err != nil {
		fmt.Fprintln(stderr, WarningStyle.Render("Warning:")+" failed to render help: "+err.Error())
		return
	}
	fmt.Fprint(stderr, rendered)
}
