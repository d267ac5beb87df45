// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. os.UserHomeDir() does
// not reliably respect the HOME environment variable on every platform
// (macOS in CI, notably), so tests point the whole lookup elsewhere
// instead of faking the home directory.
var configDirOverride string

// SetConfigDirOverride redirects ConfigDir to a fixed path. Test-only;
// pair every call with a deferred Reset.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears the config directory override.
func Reset() {
	configDirOverride = ""
}
