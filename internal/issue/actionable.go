// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError carries the context a user needs to act on a failure:
// the operation that failed, the resource involved, and suggestions for
// recovering. Construct one through the ErrorContext builder:
//
//	return issue.NewErrorContext().
//		WithOperation("load configuration").
//		WithResource("~/.config/rund/rund.cue").
//		WithSuggestion("Run 'rund config init' to create one").
//		Wrap(err).
//		BuildError()
type ActionableError struct {
	// Operation is a verb phrase for what was being attempted, such as
	// "resolve compiler" or "stage build".
	Operation string

	// Resource identifies the file, path, or entity involved (optional).
	Resource string

	// Suggestions are recovery hints shown below the message (optional).
	Suggestions []string

	// Cause is the underlying error (optional).
	Cause error
}

// Error returns the one-line form used in non-verbose output.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for display. Suggestions follow the message
// as a bulleted list. With verbose set, the numbered unwrap chain of
// the cause is appended so the origin of the failure is visible.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if verbose {
		writeChain(&b, e.Cause)
	}
	return b.String()
}

// writeChain appends the numbered unwrap chain of err, one cause per
// line, outermost first.
func writeChain(b *strings.Builder, err error) {
	if err == nil {
		return
	}
	b.WriteString("\n\nError chain:")
	for depth := 1; err != nil; depth++ {
		fmt.Fprintf(b, "\n  %d. %v", depth, err)
		err = errors.Unwrap(err)
	}
}

// ErrorContext accumulates error context piece by piece. A context can
// be prepared up front and finished with Wrap once the error is known,
// and reused across failures that share operation and resource.
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WithOperation sets the verb phrase for what was being attempted.
// Build refuses to produce an error without one.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the file, path, or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one recovery hint. Call repeatedly to stack
// suggestions in display order.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying error as the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build assembles the ActionableError. Returns nil when no operation
// was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError returns Build's result as an error value, converting a nil
// *ActionableError into a nil interface so callers can return it
// directly.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
