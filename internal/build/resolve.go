// SPDX-License-Identifier: MPL-2.0

package build

import (
	"os"
	"runtime"

	"rund/internal/config"
	"rund/pkg/fspath"
	"rund/pkg/platform"
	"rund/pkg/types"
)

// ResolveTempDir returns the directory the launcher should use for build
// artifacts. A non-empty userDir is validated for well-formedness and
// returned verbatim; an empty one selects the platform default under the
// system temporary directory.
func ResolveTempDir(userDir string) (string, error) {
	return resolveTempDirFrom(userDir, os.TempDir(), os.Getuid(), platform.CurrentTempStrategy())
}

// resolveTempDirFrom computes the temp directory from explicit inputs.
// Accepting the temp root, uid and suffix strategy as parameters keeps the
// function testable for every platform without process-wide state.
func resolveTempDirFrom(userDir, tempRoot string, uid int, st platform.TempSuffixStrategy) (string, error) {
	if userDir != "" {
		if err := types.FilesystemPath(userDir).Validate(); err != nil {
			return "", err
		}
		return userDir, nil
	}
	sub := st.Subdir(config.AppName, uid)
	return string(fspath.JoinStr(types.FilesystemPath(tempRoot), sub)), nil
}

// ResolveCompiler returns the compiler executable the launcher should
// invoke. A non-empty override wins verbatim, with no filesystem check:
// whether it exists is the compiler invocation's problem, not ours.
// Without an override the launcher prefers a default-named compiler
// shipped alongside its own executable, falling back to the bare default
// name so PATH lookup decides at invocation time.
func ResolveCompiler(override, defaultName string) string {
	return resolveCompilerFrom(override, defaultName, runtime.GOOS, os.Executable, statRegular)
}

// resolveCompilerFrom performs compiler resolution using the provided
// lookup functions. Accepting executable and isRegular as parameters
// allows tests to inject custom behavior without touching the filesystem.
func resolveCompilerFrom(override, defaultName, osName string, executable func() (string, error), isRegular func(string) bool) string {
	if override != "" {
		return override
	}

	exe, err := executable()
	if err != nil {
		return defaultName
	}

	name := defaultName
	if osName == platform.Windows {
		name += ".exe"
	}

	candidate := string(fspath.JoinStr(fspath.Dir(types.FilesystemPath(exe)), name))
	if isRegular(candidate) {
		return candidate
	}
	return defaultName
}

// statRegular reports whether path names an existing regular file.
// This is the production adapter for the isRegular parameter of
// resolveCompilerFrom, wrapping os.Stat to match the func(string) bool
// signature.
func statRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
