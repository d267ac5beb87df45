// SPDX-License-Identifier: MPL-2.0

package build

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"rund/internal/args"
	"rund/pkg/fspath"
	"rund/pkg/platform"
	"rund/pkg/types"
)

// ErrNothingToRun is returned when an invocation names no program and
// carries no --eval or --loop code.
var ErrNothingToRun = errors.New("nothing to run")

// Plan describes the work one invocation would perform: the compiler
// invocation, the scratch directory, and the program invocation that
// follows a successful build. The command layer renders it; nothing here
// executes.
type Plan struct {
	// CompilerArgv is the full compiler invocation, argv[0] first.
	CompilerArgv []string

	// TempDir is the resolved scratch directory for build artifacts.
	TempDir string

	// ProgramArgv is the invocation of the built program, argv[0] first.
	// Nil when the launcher stops after the build (--build-only,
	// --makedepend, --makedepfile).
	ProgramArgv []string

	// SyntheticSource holds the program text synthesized from --eval or
	// --loop code. Empty when an on-disk program is named.
	SyntheticSource string
}

// NewPlan assembles the build plan for one invocation. --eval takes
// precedence over --loop when both are given; a named program is only
// consulted when neither supplies code.
func NewPlan(settings *Settings, parsed *args.ParsedArgs) (*Plan, error) {
	synthetic := ""
	sourceName := parsed.ProgramPath
	switch {
	case len(parsed.EvalCode) > 0:
		synthetic = EvalSource(parsed.EvalCode)
		sourceName = evalSourceName
	case len(parsed.LoopCode) > 0:
		synthetic = LoopSource(parsed.LoopCode)
		sourceName = loopSourceName
	case parsed.ProgramPath == "":
		return nil, ErrNothingToRun
	}

	tempDir, err := ResolveTempDir(settings.TempDir)
	if err != nil {
		return nil, err
	}
	compiler := ResolveCompiler(parsed.Compiler, string(settings.Compiler))

	sourcePath := sourceName
	if synthetic != "" {
		sourcePath = string(fspath.JoinStr(types.FilesystemPath(tempDir), sourceName))
	}

	exePath := settings.ExeFile
	if exePath == "" {
		exePath = string(fspath.JoinStr(types.FilesystemPath(tempDir), exeNameFor(sourceName, runtime.GOOS)))
	}

	argv := []string{compiler}
	argv = append(argv, parsed.CompilerFlags...)
	if parsed.AddStubMain {
		argv = append(argv, "-main")
	}
	switch {
	case parsed.MakeDepFile != "":
		argv = append(argv, "-deps="+parsed.MakeDepFile)
	case parsed.MakeDepend:
		argv = append(argv, "-deps")
	}
	if settings.PreserveOutputPaths {
		argv = append(argv, "-op")
	}
	if parsed.Output.Dir != "" {
		argv = append(argv, "-od"+parsed.Output.Dir)
	}
	argv = append(argv, "-of"+exePath)
	argv = append(argv, settings.ExtraFiles...)
	argv = append(argv, sourcePath)

	plan := &Plan{
		CompilerArgv:    argv,
		TempDir:         tempDir,
		SyntheticSource: synthetic,
	}
	if !settings.BuildOnly && !parsed.MakeDepend && parsed.MakeDepFile == "" {
		plan.ProgramArgv = append([]string{exePath}, parsed.ProgramArgs...)
	}
	return plan, nil
}

// Render produces the human-readable plan listing printed by --dry-run and
// echoed by chatty diagnostics.
func (p *Plan) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "build:   %s\n", strings.Join(p.CompilerArgv, " "))
	fmt.Fprintf(&b, "tempdir: %s\n", p.TempDir)
	if p.SyntheticSource != "" {
		b.WriteString("source:\n")
		for _, line := range strings.Split(strings.TrimRight(p.SyntheticSource, "\n"), "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	if len(p.ProgramArgv) > 0 {
		fmt.Fprintf(&b, "run:     %s\n", strings.Join(p.ProgramArgv, " "))
	}
	return b.String()
}

// CommandLines returns the plan as shell-pasteable command lines, one per
// stage. The run line is omitted when the launcher stops after the build.
func (p *Plan) CommandLines() []string {
	lines := []string{strings.Join(p.CompilerArgv, " ")}
	if len(p.ProgramArgv) > 0 {
		lines = append(lines, strings.Join(p.ProgramArgv, " "))
	}
	return lines
}

// exeNameFor derives the build artifact name for a program source file.
// The .d extension is dropped and the platform executable suffix appended.
// Windows reserved device names get a prefix so the artifact stays
// writable: building CON.d must not try to create CON.exe.
func exeNameFor(source, osName string) string {
	name := strings.TrimSuffix(fspath.Base(types.FilesystemPath(source)), ".d")
	if osName == platform.Windows {
		if platform.IsWindowsReservedName(name) {
			name = "rund_" + name
		}
		name += ".exe"
	}
	return name
}
