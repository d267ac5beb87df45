// SPDX-License-Identifier: MPL-2.0

// Package issue is the launcher's failure catalog. Each failure the CLI
// can hit maps to a markdown help entry rendered below the error message.
// The package also carries ActionableError, which attaches operation
// context and recovery suggestions to an underlying cause.
package issue
