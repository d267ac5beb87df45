// SPDX-License-Identifier: MPL-2.0

package args

import (
	"errors"
	"strings"
)

// ErrEmptyArguments is returned when the boundary scan receives a
// zero-length vector. Index 0 is the invocation name, so even a
// program-less call carries at least one argument.
var ErrEmptyArguments = errors.New("empty argument vector")

// evalFlag shifts the program boundary: the argument following it is the
// code to evaluate, never the program path.
const evalFlag = "--eval"

// nonProgramExts mark linker inputs. An argument ending in one of these is
// handed to the compiler, not mistaken for the program.
var nonProgramExts = []string{".obj", ".o", ".lib", ".a", ".def", ".map", ".res"}

// Boundary is the result of locating the target program in an argument
// vector. Found reports whether any argument qualified; Index is only
// meaningful when Found is true.
type Boundary struct {
	Index int
	Found bool
}

// SplitPoint returns the index where launcher arguments end for a vector
// of argc arguments: the program's index when one was found, otherwise
// argc itself.
func (b Boundary) SplitPoint(argc int) int {
	if b.Found {
		return b.Index
	}
	return argc
}

// LocateProgram scans an expanded argument vector left to right for the
// first argument that can be the target program: it must not start with
// '-' or '@', must not end with a linker-input extension, and must not
// immediately follow the --eval flag. The scan starts at index 1; index 0
// is the launcher's own invocation name. The earliest qualifying index
// wins.
//
// Fails with ErrEmptyArguments when the vector has no elements at all.
// A vector where nothing qualifies yields Found == false, not an error.
func LocateProgram(argv []string) (Boundary, error) {
	if len(argv) == 0 {
		return Boundary{}, ErrEmptyArguments
	}
	for i := 1; i < len(argv); i++ {
		if isProgramArg(argv[i], argv[i-1]) {
			return Boundary{Index: i, Found: true}, nil
		}
	}
	return Boundary{}, nil
}

// isProgramArg reports whether arg can be the target program given the
// argument that precedes it.
func isProgramArg(arg, prev string) bool {
	if strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "@") {
		return false
	}
	for _, ext := range nonProgramExts {
		if strings.HasSuffix(arg, ext) {
			return false
		}
	}
	return prev != evalFlag
}
