// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/rund/rund.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/rund/rund.cue on macOS, %APPDATA%\rund\rund.cue on
// Windows), with RUND_* environment variables layered on top. The package provides
// type-safe access to the launcher defaults: which compiler to delegate to, which
// package roots to exclude from dependency tracking, and where to stage builds.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
