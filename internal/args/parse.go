// SPDX-License-Identifier: MPL-2.0

package args

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFlagValue is the sentinel error wrapped by MissingFlagValueError.
var ErrMissingFlagValue = errors.New("missing flag value")

type (
	// ParsedArgs is the launcher's view of one invocation: every flag the
	// launcher consumes plus the target program and its arguments. A value
	// is built once by Parse and never mutated afterward.
	ParsedArgs struct {
		Chatty      bool
		BuildOnly   bool
		DryRun      bool
		Force       bool
		Help        bool
		Man         bool
		AddStubMain bool
		MakeDepend  bool

		// Output holds the -of/-od/-op destinations. -of and -od are
		// each accepted at most once per parse; -op may repeat.
		Output OutputState

		Compiler    string
		TempDir     string
		MakeDepFile string
		ProgramPath string

		CompilerFlags []string
		EvalCode      []string
		LoopCode      []string
		Exclusions    []string
		Inclusions    []string
		ExtraFiles    []string
		ProgramArgs   []string
	}

	// MissingFlagValueError is returned when a flag that needs a value
	// appears bare. Value flags other than --eval must use the
	// --flag=value spelling: a space-separated value would be claimed by
	// the program boundary instead.
	MissingFlagValueError struct {
		Flag string
	}
)

// Error implements the error interface for MissingFlagValueError.
func (e *MissingFlagValueError) Error() string {
	return fmt.Sprintf("missing value for %s: use %s=VALUE", e.Flag, e.Flag)
}

// Unwrap returns ErrMissingFlagValue for errors.Is() compatibility.
func (e *MissingFlagValueError) Unwrap() error { return ErrMissingFlagValue }

// Parse scans an already shebang-expanded argument vector and builds the
// launcher's ParsedArgs. The program boundary is located first; the flag
// scan then consumes everything before it, and the boundary argument plus
// its tail become the target program and its arguments.
//
// Arguments before the boundary that match no launcher flag (other dashed
// flags, @response files, linker inputs like foo.o) pass through to
// CompilerFlags verbatim. The first failure aborts the parse and is
// returned as a typed error; no partial recovery happens here.
func Parse(argv []string) (*ParsedArgs, error) {
	boundary, err := LocateProgram(argv)
	if err != nil {
		return nil, err
	}
	split := boundary.SplitPoint(len(argv))

	p := &ParsedArgs{}
	for i := 1; i < split; i++ {
		arg := argv[i]
		switch {
		case arg == "--chatty":
			p.Chatty = true
		case arg == "--build-only":
			p.BuildOnly = true
		case arg == "--dry-run":
			p.DryRun = true
		case arg == "--force":
			p.Force = true
		case arg == "--help" || arg == "-h":
			p.Help = true
		case arg == "--man":
			p.Man = true
		case arg == "--main":
			p.AddStubMain = true
		case arg == "--makedepend":
			p.MakeDepend = true
		case arg == evalFlag:
			// The boundary exempts the argument after --eval, so the
			// space-separated value is always inside the launcher segment.
			if i+1 >= split {
				return nil, &MissingFlagValueError{Flag: evalFlag}
			}
			i++
			p.EvalCode = append(p.EvalCode, argv[i])
		case strings.HasPrefix(arg, evalFlag+"="):
			p.EvalCode = append(p.EvalCode, flagValue(arg))
		case strings.HasPrefix(arg, "--loop="):
			p.LoopCode = append(p.LoopCode, flagValue(arg))
		case strings.HasPrefix(arg, "--exclude="):
			p.Exclusions = append(p.Exclusions, flagValue(arg))
		case strings.HasPrefix(arg, "--include="):
			p.Inclusions = append(p.Inclusions, flagValue(arg))
		case strings.HasPrefix(arg, "--extra-file="):
			p.ExtraFiles = append(p.ExtraFiles, flagValue(arg))
		case strings.HasPrefix(arg, "--makedepfile="):
			p.MakeDepFile = flagValue(arg)
		case strings.HasPrefix(arg, "--compiler="):
			p.Compiler = flagValue(arg)
		case strings.HasPrefix(arg, "--tmpdir="):
			p.TempDir = flagValue(arg)
		case isBareValueFlag(arg):
			return nil, &MissingFlagValueError{Flag: arg}
		case strings.HasPrefix(arg, "--shebang"):
			// Expanded already when it was the real shebang argument at
			// index 1. Anywhere else it is residue; swallow it.
		case strings.HasPrefix(arg, "-o"):
			next, err := ParseOutputOption(p.Output, "o", arg[2:])
			if err != nil {
				return nil, err
			}
			p.Output = next
		default:
			p.CompilerFlags = append(p.CompilerFlags, arg)
		}
	}

	if boundary.Found {
		p.ProgramPath = argv[boundary.Index]
		p.ProgramArgs = append(p.ProgramArgs, argv[boundary.Index+1:]...)
	}
	return p, nil
}

// bareValueFlags need an attached =VALUE. Bare occurrences are user
// mistakes, not compiler passthrough.
var bareValueFlags = []string{
	"--loop", "--exclude", "--include", "--extra-file",
	"--makedepfile", "--compiler", "--tmpdir",
}

func isBareValueFlag(arg string) bool {
	for _, f := range bareValueFlags {
		if arg == f {
			return true
		}
	}
	return false
}

// flagValue returns everything after the first '=' in a --flag=value
// argument. Values containing further '=' characters keep them intact.
func flagValue(arg string) string {
	_, v, _ := strings.Cut(arg, "=")
	return v
}
