// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the launcher's
// domain packages (args, build, config). These are foundation types that
// carry semantic meaning and validation but have no domain-specific
// dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCompilerName is the sentinel error wrapped by InvalidCompilerNameError.
var ErrInvalidCompilerName = errors.New("invalid compiler name")

type (
	// CompilerName represents the compiler executable to invoke, either a
	// bare name resolved via PATH (e.g. "dmd") or an explicit path to a
	// binary. The zero value ("") is invalid; a build always needs a
	// compiler.
	CompilerName string

	// InvalidCompilerNameError is returned when a CompilerName value is
	// empty or whitespace-only.
	InvalidCompilerNameError struct {
		Value CompilerName
	}
)

// String returns the string representation of the CompilerName.
func (c CompilerName) String() string { return string(c) }

// Validate returns an error if the CompilerName is empty or whitespace-only.
func (c CompilerName) Validate() error {
	if strings.TrimSpace(string(c)) == "" {
		return &InvalidCompilerNameError{Value: c}
	}
	return nil
}

// Error implements the error interface for InvalidCompilerNameError.
func (e *InvalidCompilerNameError) Error() string {
	return fmt.Sprintf("invalid compiler name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidCompilerName for errors.Is() compatibility.
func (e *InvalidCompilerNameError) Unwrap() error { return ErrInvalidCompilerName }
