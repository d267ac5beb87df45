// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"rund/pkg/platform"
)

// SetHomeDir points the platform's home directory variable at dir and
// returns a function that restores the original value. Windows resolves
// the home from USERPROFILE, everything else from HOME.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	key := "HOME"
	if runtime.GOOS == platform.Windows {
		key = "USERPROFILE"
	}
	return MustSetenv(t, key, dir)
}
