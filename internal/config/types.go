// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"rund/pkg/types"
)

const (
	// DefaultCompiler is the compiler used when neither the command line,
	// the environment, nor the config file names one.
	DefaultCompiler types.CompilerName = "dmd"
)

var (
	// ErrInvalidTempDirPath is returned when a TempDirPath value is whitespace-only.
	ErrInvalidTempDirPath = errors.New("invalid temp dir path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// TempDirPath represents a filesystem path to a build staging directory.
	// The zero value ("") is valid and means "derive a per-user directory
	// under the system temp location". Non-zero values must not be
	// whitespace-only.
	TempDirPath string

	// InvalidTempDirPathError is returned when a TempDirPath value is
	// non-empty but whitespace-only.
	InvalidTempDirPathError struct {
		Value TempDirPath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Compiler names the D compiler rund delegates builds to.
		Compiler types.CompilerName `json:"compiler" mapstructure:"compiler"`
		// Exclusions lists package roots excluded from dependency tracking.
		Exclusions []types.PackagePattern `json:"exclusions" mapstructure:"exclusions"`
		// Chatty enables verbose diagnostics by default.
		Chatty bool `json:"chatty" mapstructure:"chatty"`
		// TempDir overrides the directory used to stage builds.
		TempDir TempDirPath `json:"tmpdir" mapstructure:"tmpdir"`
	}

	// Defaults is the read-only slice of configuration the launcher core
	// consumes: the compiler to fall back to, the packages excluded from
	// dependency tracking, and the staging directory override.
	Defaults struct {
		Compiler   types.CompilerName
		Exclusions []types.PackagePattern
		Chatty     bool
		TempDir    string
	}
)

// Validate checks every field that carries a constraint. Field errors are
// collected rather than short-circuited so a bad config reports all its
// problems at once. Chatty needs no validation.
func (c Config) Validate() error {
	var errs []error
	if err := c.Compiler.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, pattern := range c.Exclusions {
		if err := pattern.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.TempDir.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Defaults returns the launcher defaults carried by this Config.
// The exclusion slice is cloned so callers cannot mutate the Config.
func (c *Config) Defaults() Defaults {
	exclusions := make([]types.PackagePattern, len(c.Exclusions))
	copy(exclusions, c.Exclusions)

	return Defaults{
		Compiler:   c.Compiler,
		Exclusions: exclusions,
		Chatty:     c.Chatty,
		TempDir:    string(c.TempDir),
	}
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %s", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the TempDirPath.
func (p TempDirPath) String() string { return string(p) }

// Validate returns an error if the TempDirPath is non-empty but
// whitespace-only. The zero value passes; it selects the derived staging
// directory.
func (p TempDirPath) Validate() error {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return &InvalidTempDirPathError{Value: p}
	}
	return nil
}

// Error implements the error interface for InvalidTempDirPathError.
func (e *InvalidTempDirPathError) Error() string {
	return fmt.Sprintf("invalid temp dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidTempDirPath for errors.Is() compatibility.
func (e *InvalidTempDirPathError) Unwrap() error { return ErrInvalidTempDirPath }

// DefaultExclusions returns the package roots excluded from dependency
// tracking when the config file does not name its own list. The slice is
// freshly allocated on every call.
func DefaultExclusions() []types.PackagePattern {
	return []types.PackagePattern{"std", "etc", "core"}
}

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag says otherwise.
func DefaultConfig() *Config {
	return &Config{
		Compiler:   DefaultCompiler,
		Exclusions: DefaultExclusions(),
		Chatty:     false,
		TempDir:    "",
	}
}
