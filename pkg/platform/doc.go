// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package contains utilities for handling platform-specific concerns:
// OS name constants, the per-OS strategy for naming the launcher's scratch
// directory under the system temporary directory, and Windows reserved
// filenames that cannot be used as output file names.
package platform
