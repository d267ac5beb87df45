// SPDX-License-Identifier: MPL-2.0

package build

import "strings"

// Conceptual file names for synthesized programs. The plan places them
// under the resolved temp directory.
const (
	evalSourceName = "eval.d"
	loopSourceName = "loop.d"
)

// sourcePreamble is prepended to every synthesized program so one-liners
// have the standard library in scope.
const sourcePreamble = "import std;\n\nvoid main(string[] args) {\n"

// EvalSource synthesizes a complete program from --eval code snippets.
// Snippets are joined by newlines inside a main() body, with a single
// terminating semicolon so trailing expressions become statements.
func EvalSource(snippets []string) string {
	var b strings.Builder
	b.WriteString(sourcePreamble)
	b.WriteString(strings.Join(snippets, "\n"))
	b.WriteString(";\n}\n")
	return b.String()
}

// LoopSource synthesizes a program that runs --loop code snippets once per
// line of standard input, with the current line bound to `line`.
func LoopSource(snippets []string) string {
	var b strings.Builder
	b.WriteString(sourcePreamble)
	b.WriteString("foreach (line; stdin.byLineCopy) {\n")
	b.WriteString(strings.Join(snippets, "\n"))
	b.WriteString(";\n}\n}\n")
	return b.String()
}
