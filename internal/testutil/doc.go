// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include environment variable management (MustSetenv,
// MustUnsetenv), directory moves (MustChdir, SetHomeDir), and filesystem
// setup (MustMkdirAll, MustWriteFile). Every helper that changes process
// state returns the function that undoes the change.
package testutil
