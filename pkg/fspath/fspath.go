// SPDX-License-Identifier: MPL-2.0

// Package fspath wraps the path/filepath operations the launcher needs so
// they accept and return types.FilesystemPath. Keeping the casts here lets
// call sites stay typed end to end.
package fspath

import (
	"path/filepath"

	"rund/pkg/types"
)

// JoinStr joins a typed base path with raw string segments. Use this when
// appending literal names (e.g., "rund.cue") or derived artifact names to
// an already validated directory.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	return types.FilesystemPath(filepath.Join(append([]string{string(base)}, elem...)...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Base wraps filepath.Base for FilesystemPath. A base name is no longer a
// path, so it comes back as a plain string.
func Base(p types.FilesystemPath) string {
	return filepath.Base(string(p))
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}
