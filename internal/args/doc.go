// SPDX-License-Identifier: MPL-2.0

// Package args turns a raw process argument vector into the launcher's
// parsed arguments. It owns the three preprocessing steps that run before
// anything else: shebang expansion (rewriting a combined interpreter-line
// argument into discrete arguments), program boundary location (finding
// where launcher flags end and the target program begins), and compound
// -o output-option parsing. Parse composes the three with a flag scan
// covering the launcher's full flag surface.
//
// Everything in this package is pure computation over in-memory strings.
// No logging, no process exit, no filesystem access; failures surface as
// typed errors for the command layer to render.
package args
