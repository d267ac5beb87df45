// SPDX-License-Identifier: MPL-2.0

// Package build turns parsed launcher arguments and configuration defaults
// into concrete build parameters: the effective settings for one invocation,
// the temporary directory and compiler executable to use, and the plan
// describing the compiler and program invocations.
//
// The package performs no compilation and spawns no processes; its product
// is the Plan value that the command layer renders.
package build
