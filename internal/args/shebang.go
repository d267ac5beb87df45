// SPDX-License-Identifier: MPL-2.0

package args

import "strings"

// Shebang prefixes recognized at index 1 of the raw argument vector.
// A kernel passes the whole interpreter line after the launcher path as a
// single argument, so `#!/usr/bin/rund --shebang --chatty` arrives as one
// "--shebang --chatty <script>" token.
const (
	shebangSpacePrefix  = "--shebang "
	shebangEqualsPrefix = "--shebang="
)

// ExpandShebang rewrites a shebang-style invocation into discrete
// arguments. When the argument at index 1 begins with "--shebang " or
// "--shebang=", the remainder of that single argument is split on
// whitespace and spliced into the vector in its place; index 0 and all
// arguments from index 2 onward are carried over unchanged. In that case a
// freshly allocated vector is returned and the input is left untouched.
//
// Vectors of length <= 1, and vectors whose index-1 argument lacks the
// prefix, are returned as-is. A shebang-shaped token at any other index is
// not expansion material.
func ExpandShebang(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	var line string
	switch {
	case strings.HasPrefix(argv[1], shebangSpacePrefix):
		line = strings.TrimPrefix(argv[1], shebangSpacePrefix)
	case strings.HasPrefix(argv[1], shebangEqualsPrefix):
		line = strings.TrimPrefix(argv[1], shebangEqualsPrefix)
	default:
		return argv
	}

	fields := strings.Fields(line)
	expanded := make([]string, 0, 1+len(fields)+len(argv)-2)
	expanded = append(expanded, argv[0])
	expanded = append(expanded, fields...)
	expanded = append(expanded, argv[2:]...)
	return expanded
}
