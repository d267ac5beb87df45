// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"rund/internal/issue"
	"rund/pkg/types"
)

// ExitError carries the process exit code for a failed invocation so
// RunE handlers can return it instead of calling os.Exit mid-run.
// Execute unwraps the code after fang has printed the error.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ServiceError pairs a launcher error with its presentation: an
// optional pre-styled message and an optional issue catalog entry,
// both shown after the plain error line. Err must not be nil; use
// newServiceError, which enforces that.
type ServiceError struct {
	Err           error
	IssueID       issue.Id
	StyledMessage string
}

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

func (e *ServiceError) Error() string { return e.Err.Error() }

func (e *ServiceError) Unwrap() error { return e.Err }

// Render writes the styled message followed by the issue catalog entry.
// Either part may be absent. A render failure of the catalog entry is
// logged rather than surfaced; the plain error line already reached the
// user through fang.
func (e *ServiceError) Render(w io.Writer) {
	if e == nil {
		return
	}

	if e.StyledMessage != "" {
		fmt.Fprint(w, e.StyledMessage)
	}

	if e.IssueID == 0 {
		return
	}
	entry := issue.Get(e.IssueID)
	if entry == nil {
		return
	}
	rendered, err := entry.Render("dark")
	if err != nil {
		log.Warn("failed to render issue catalog entry", "issue", e.IssueID, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}
