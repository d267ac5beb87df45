// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rund.
//
// This package implements the Cobra command hierarchy for the rund CLI.
// The root command is the launcher itself: flag parsing is disabled so the
// raw argument vector reaches rund's own parser, which understands the
// program boundary and the compiler passthrough grammar that Cobra flags
// cannot express. Subcommands cover configuration management and the issue
// catalog.
package cmd
