// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationError is a single schema violation, located by document
// name and by JSON-style path inside the document.
type ValidationError struct {
	// FilePath names the document being checked.
	FilePath string

	// CUEPath locates the offending value, e.g. "exclusions[0]".
	// Empty when the error carries no position, such as a syntax error.
	CUEPath CUEPath

	// Message is the violation reported by CUE, with any redundant
	// leading path prefix stripped.
	Message string
}

func (e *ValidationError) Error() string {
	if e.CUEPath != "" {
		return fmt.Sprintf("%s: %s: %s", e.FilePath, e.CUEPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// FormatError rewrites a CUE error for display as
//
//	<file>: <path>: <message>
//
// A single violation comes back as a *ValidationError. Multiple
// violations fold into one error that lists each on its own line.
// Errors that did not come from CUE are wrapped with the file path.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	found := violations(err, filePath)
	switch len(found) {
	case 0:
		return fmt.Errorf("%s: %w", filePath, err)
	case 1:
		return found[0]
	}

	lines := make([]string, len(found))
	for i, v := range found {
		if v.CUEPath != "" {
			lines[i] = fmt.Sprintf("%s: %s", v.CUEPath, v.Message)
		} else {
			lines[i] = v.Message
		}
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// violations flattens a CUE error into located ValidationErrors. CUE
// repeats the path at the front of some messages; the duplicate prefix
// is stripped so the formatted line shows it once.
func violations(err error, filePath string) []*ValidationError {
	all := cueerrors.Errors(err)
	found := make([]*ValidationError, 0, len(all))
	for _, e := range all {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()
		if rest, ok := strings.CutPrefix(msg, string(path)); ok && path != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		}
		found = append(found, &ValidationError{FilePath: filePath, CUEPath: path, Message: msg})
	}
	return found
}

// formatPath renders a CUE error path in JSON-style notation, turning
// ["exclusions", "0"] into "exclusions[0]". Users read that form more
// readily than CUE's flat path elements.
func formatPath(parts []string) CUEPath {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 && isIndex(part) {
			b.WriteString("[")
			b.WriteString(part)
			b.WriteString("]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return CUEPath(b.String())
}

// isIndex reports whether a path element is a bare array index.
func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects documents larger than maxSize bytes. Exposed so
// callers that read files themselves can enforce the same cap before
// handing data to Check.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file is %d bytes, limit is %d", filename, size, maxSize)
	}
	return nil
}
