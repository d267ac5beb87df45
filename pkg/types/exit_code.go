// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status in the POSIX range 0-255.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode cannot round-trip
	// through an actual process exit.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Codes the launcher reports for its own failures. Compiler and program
// exit codes are forwarded untouched, so anything else a caller observes
// came from the build or the launched program.
const (
	ExitSuccess ExitCode = 0
	ExitUsage   ExitCode = 1
	ExitConfig  ExitCode = 2
)

// String returns the decimal form, matching what a shell's $? would show.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Validate returns an error if the ExitCode is outside the range 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether the code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Error implements the error interface for InvalidExitCodeError.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d: must be in range 0-255", e.Value)
}

// Unwrap returns ErrInvalidExitCode for errors.Is() compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }
