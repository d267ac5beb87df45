// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPackagePattern is the sentinel error wrapped by InvalidPackagePatternError.
var ErrInvalidPackagePattern = errors.New("invalid package pattern")

type (
	// PackagePattern represents a package-name prefix used to include or
	// exclude modules from a build (e.g. "std", "core"). The zero value
	// ("") is invalid; patterns must name something.
	PackagePattern string

	// InvalidPackagePatternError is returned when a PackagePattern value is
	// empty, whitespace-only, or contains whitespace.
	InvalidPackagePatternError struct {
		Value PackagePattern
	}
)

// String returns the string representation of the PackagePattern.
func (p PackagePattern) String() string { return string(p) }

// Validate returns an error if the PackagePattern is empty or contains
// whitespace. Package names never carry spaces, so any whitespace means a
// quoting mistake on the command line.
func (p PackagePattern) Validate() error {
	s := string(p)
	if strings.TrimSpace(s) == "" || strings.ContainsAny(s, " \t") {
		return &InvalidPackagePatternError{Value: p}
	}
	return nil
}

// Matches reports whether the given module name falls under this pattern.
// A pattern matches the module with the same name and any module in a
// subpackage of it ("std" matches "std" and "std.stdio", not "stdx").
func (p PackagePattern) Matches(module string) bool {
	s := string(p)
	return module == s || strings.HasPrefix(module, s+".")
}

// Error implements the error interface for InvalidPackagePatternError.
func (e *InvalidPackagePatternError) Error() string {
	return fmt.Sprintf("invalid package pattern %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidPackagePattern for errors.Is() compatibility.
func (e *InvalidPackagePatternError) Unwrap() error { return ErrInvalidPackagePattern }
