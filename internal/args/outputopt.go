// SPDX-License-Identifier: MPL-2.0

package args

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors wrapped by the output-option error types below.
var (
	// ErrInvalidOption is the sentinel wrapped by InvalidOptionError.
	ErrInvalidOption = errors.New("invalid output option")
	// ErrEmptyOptionValue is returned when -o carries no attached value.
	ErrEmptyOptionValue = errors.New("empty output option value")
	// ErrDuplicateOutputFile is the sentinel wrapped by DuplicateOutputFileError.
	ErrDuplicateOutputFile = errors.New("duplicate output file")
	// ErrDuplicateOutputDir is the sentinel wrapped by DuplicateOutputDirError.
	ErrDuplicateOutputDir = errors.New("duplicate output directory")
	// ErrUnsupportedOption is the sentinel wrapped by UnsupportedOptionError.
	ErrUnsupportedOption = errors.New("unsupported output option")
	// ErrUnrecognizedOption is the sentinel wrapped by UnrecognizedOptionError.
	ErrUnrecognizedOption = errors.New("unrecognized output option")
)

type (
	// OutputState holds the three destinations steered by compound -o
	// flags: the output file (-of), the output directory (-od), and
	// whether source paths are preserved under the output directory (-op).
	OutputState struct {
		File          string
		Dir           string
		PreservePaths bool
	}

	// InvalidOptionError is returned when the output-option parser is
	// handed a flag other than "o". The parser is wired to -o alone;
	// anything else reaching it is a dispatch bug in the caller.
	InvalidOptionError struct {
		Flag string
	}

	// DuplicateOutputFileError is returned when a second -of occurrence
	// arrives after an output file was already accepted.
	DuplicateOutputFileError struct {
		Value string
	}

	// DuplicateOutputDirError is returned when a second -od occurrence
	// arrives after an output directory was already accepted.
	DuplicateOutputDirError struct {
		Value string
	}

	// UnsupportedOptionError is returned for the reserved -o- spelling
	// (write-to-stdout), which the launcher deliberately does not support.
	UnsupportedOptionError struct {
		Value string
	}

	// UnrecognizedOptionError is returned for any -o value that selects
	// none of the known sub-behaviors (f, d, p, -).
	UnrecognizedOptionError struct {
		Value string
	}
)

// ParseOutputOption applies a single compound -o flag occurrence to state
// and returns the updated state. The flag name arrives without its leading
// dash ("o"), and value is everything attached after the flag letter. On
// error the returned state is the input state, unchanged.
//
// Dispatch runs in a fixed order: the f/d prefix checks come before the
// exact matches, so "p" and "-" must be the whole value, not a prefix.
// -of and -od each accept one occurrence per parse; -op is idempotent and
// may repeat freely.
func ParseOutputOption(state OutputState, flag, value string) (OutputState, error) {
	if flag != "o" {
		return state, &InvalidOptionError{Flag: flag}
	}
	if value == "" {
		return state, ErrEmptyOptionValue
	}

	switch {
	case strings.HasPrefix(value, "f"):
		if state.File != "" {
			return state, &DuplicateOutputFileError{Value: value}
		}
		state.File = stripAssign(value[1:])
	case strings.HasPrefix(value, "d"):
		if state.Dir != "" {
			return state, &DuplicateOutputDirError{Value: value}
		}
		state.Dir = stripAssign(value[1:])
	case value == "-":
		return state, &UnsupportedOptionError{Value: value}
	case value == "p":
		state.PreservePaths = true
	default:
		return state, &UnrecognizedOptionError{Value: value}
	}
	return state, nil
}

// stripAssign removes one optional leading "=" so that -of=path and
// -ofpath spell the same thing.
func stripAssign(v string) string {
	return strings.TrimPrefix(v, "=")
}

// Error implements the error interface for InvalidOptionError.
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid output option -%s: only -o is handled here", e.Flag)
}

// Unwrap returns ErrInvalidOption for errors.Is() compatibility.
func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }

// Error implements the error interface for DuplicateOutputFileError.
func (e *DuplicateOutputFileError) Error() string {
	return fmt.Sprintf("duplicate output file option -o%s: -of may appear only once", e.Value)
}

// Unwrap returns ErrDuplicateOutputFile for errors.Is() compatibility.
func (e *DuplicateOutputFileError) Unwrap() error { return ErrDuplicateOutputFile }

// Error implements the error interface for DuplicateOutputDirError.
func (e *DuplicateOutputDirError) Error() string {
	return fmt.Sprintf("duplicate output directory option -o%s: -od may appear only once", e.Value)
}

// Unwrap returns ErrDuplicateOutputDir for errors.Is() compatibility.
func (e *DuplicateOutputDirError) Unwrap() error { return ErrDuplicateOutputDir }

// Error implements the error interface for UnsupportedOptionError.
func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("unsupported output option -o%s: writing the binary to stdout is not supported", e.Value)
}

// Unwrap returns ErrUnsupportedOption for errors.Is() compatibility.
func (e *UnsupportedOptionError) Unwrap() error { return ErrUnsupportedOption }

// Error implements the error interface for UnrecognizedOptionError.
func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized output option -o%s: expected -of, -od, or -op", e.Value)
}

// Unwrap returns ErrUnrecognizedOption for errors.Is() compatibility.
func (e *UnrecognizedOptionError) Unwrap() error { return ErrUnrecognizedOption }
