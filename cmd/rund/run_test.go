// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"rund/internal/args"
	"rund/internal/build"
	"rund/internal/issue"
	"rund/internal/testutil"
	"rund/pkg/platform"
	"rund/pkg/types"
)

// launcherCmdForTest builds a throwaway command wired to buffers so
// runLauncher can be driven without touching the process-global rootCmd.
func launcherCmdForTest(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{Use: "rund", Run: func(*cobra.Command, []string) {}}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	return cmd, &out, &errOut
}

// isolateConfig pins configuration loading to a fresh file under t.TempDir
// and clears every RUND_* value override, so pipeline tests cannot observe
// the developer's real configuration.
func isolateConfig(t *testing.T) {
	t.Helper()

	for _, key := range []string{"RUND_COMPILER", "RUND_EXCLUSIONS", "RUND_CHATTY", "RUND_TMPDIR"} {
		restore := testutil.MustUnsetenv(t, key)
		t.Cleanup(restore)
	}

	path := filepath.Join(t.TempDir(), "rund.cue")
	testutil.MustWriteFile(t, path, []byte("compiler: \"dmd\"\n"), 0o644)
	restore := testutil.MustSetenv(t, "RUND_CONFIG", path)
	t.Cleanup(restore)
}

// builtExeName mirrors the artifact naming for the current platform.
func builtExeName(name string) string {
	if runtime.GOOS == platform.Windows {
		return name + ".exe"
	}
	return name
}

func TestRunLauncher_PrintsCommandLines(t *testing.T) {
	// Not parallel: mutates process environment.
	isolateConfig(t)
	cmd, out, _ := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--tmpdir=mytmp", "myprog.d", "arg1"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "-of") || !strings.HasSuffix(lines[0], " myprog.d") {
		t.Errorf("build line = %q, want -of flag and trailing source", lines[0])
	}

	exe := filepath.Join("mytmp", builtExeName("myprog"))
	if want := exe + " arg1"; lines[1] != want {
		t.Errorf("run line = %q, want %q", lines[1], want)
	}
}

func TestRunLauncher_DryRun(t *testing.T) {
	isolateConfig(t)
	cmd, out, _ := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--dry-run", "--tmpdir=mytmp", "myprog.d"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}

	for _, want := range []string{"Dry Run", "Build:", "TempDir:", "mytmp", "Run:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("dry-run output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunLauncher_DryRunSyntheticSource(t *testing.T) {
	isolateConfig(t)
	cmd, out, _ := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--dry-run", "--tmpdir=mytmp", "--eval=writeln(42)"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}

	if !strings.Contains(out.String(), "Source:") {
		t.Errorf("dry-run output missing source section:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "writeln(42);") {
		t.Errorf("dry-run output missing synthesized code:\n%s", out.String())
	}
}

func TestRunLauncher_ChattyEchoesPlan(t *testing.T) {
	isolateConfig(t)
	cmd, out, errOut := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--chatty", "--tmpdir=mytmp", "myprog.d"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}

	if !strings.Contains(errOut.String(), "build:") {
		t.Errorf("chatty mode should echo the plan listing to stderr, got:\n%s", errOut.String())
	}
	if out.Len() == 0 {
		t.Error("chatty mode must still print the command lines to stdout")
	}
}

func TestRunLauncher_Version(t *testing.T) {
	cmd, out, _ := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--version"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}
	if want := getVersionString() + "\n"; out.String() != want {
		t.Errorf("version output = %q, want %q", out.String(), want)
	}
}

func TestRunLauncher_Help(t *testing.T) {
	cmd, out, _ := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--help"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}
	if !strings.Contains(out.String(), "Usage") {
		t.Errorf("help output missing usage section:\n%s", out.String())
	}
}

func TestRunLauncher_Man(t *testing.T) {
	cmd, out, _ := launcherCmdForTest(t)

	if err := runLauncher(cmd, []string{"--man"}); err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}
	for _, want := range []string{"rund", "--makedepfile", "program boundary"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("manual output missing %q", want)
		}
	}
}

func TestRunLauncher_ShebangExpansion(t *testing.T) {
	isolateConfig(t)
	cmd, out, _ := launcherCmdForTest(t)

	err := runLauncher(cmd, []string{"--shebang --dry-run --tmpdir=mytmp", "script.d"})
	if err != nil {
		t.Fatalf("runLauncher() error = %v", err)
	}
	if !strings.Contains(out.String(), "Dry Run") {
		t.Errorf("shebang-packed flags were not expanded:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "script.d") {
		t.Errorf("shebang script missing from plan:\n%s", out.String())
	}
}

func TestRunLauncher_NothingToRun(t *testing.T) {
	isolateConfig(t)
	cmd, _, _ := launcherCmdForTest(t)

	err := runLauncher(cmd, nil)
	if err == nil {
		t.Fatal("runLauncher() with no arguments should fail")
	}
	if !errors.Is(err, build.ErrNothingToRun) {
		t.Errorf("error = %v, want wrapped ErrNothingToRun", err)
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v does not unwrap to *ExitError", err)
	}
	if exitErr.Code != types.ExitUsage {
		t.Errorf("Code = %d, want %d", exitErr.Code, types.ExitUsage)
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error %v does not unwrap to *ServiceError", err)
	}
	if svcErr.IssueID != issue.NothingToRunId {
		t.Errorf("IssueID = %d, want %d", svcErr.IssueID, issue.NothingToRunId)
	}
}

func TestRunLauncher_ParseErrorUsageCode(t *testing.T) {
	cmd, _, _ := launcherCmdForTest(t)

	err := runLauncher(cmd, []string{"-obogus", "myprog.d"})
	if err == nil {
		t.Fatal("runLauncher() with a bad output option should fail")
	}
	if !errors.Is(err, args.ErrUnrecognizedOption) {
		t.Errorf("error = %v, want wrapped ErrUnrecognizedOption", err)
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v does not unwrap to *ExitError", err)
	}
	if exitErr.Code != types.ExitUsage {
		t.Errorf("Code = %d, want %d", exitErr.Code, types.ExitUsage)
	}
}

func TestRunLauncher_ConfigErrorCode(t *testing.T) {
	restore := testutil.MustSetenv(t, "RUND_CONFIG", filepath.Join(t.TempDir(), "no-such.cue"))
	t.Cleanup(restore)
	cmd, _, _ := launcherCmdForTest(t)

	err := runLauncher(cmd, []string{"myprog.d"})
	if err == nil {
		t.Fatal("runLauncher() with a missing forced config file should fail")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v does not unwrap to *ExitError", err)
	}
	if exitErr.Code != types.ExitConfig {
		t.Errorf("Code = %d, want %d", exitErr.Code, types.ExitConfig)
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error %v does not unwrap to *ServiceError", err)
	}
	if svcErr.IssueID != issue.ConfigLoadFailedId {
		t.Errorf("IssueID = %d, want %d", svcErr.IssueID, issue.ConfigLoadFailedId)
	}
}

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{name: "missing flag value", err: &args.MissingFlagValueError{Flag: "--compiler"}, want: issue.MissingFlagValueId},
		{name: "duplicate output file", err: &args.DuplicateOutputFileError{Value: "fbar"}, want: issue.DuplicateOutputOptionId},
		{name: "duplicate output dir", err: &args.DuplicateOutputDirError{Value: "dbar"}, want: issue.DuplicateOutputOptionId},
		{name: "unsupported option", err: &args.UnsupportedOptionError{Value: "-"}, want: issue.BadOutputOptionId},
		{name: "unrecognized option", err: &args.UnrecognizedOptionError{Value: "x"}, want: issue.BadOutputOptionId},
		{name: "empty option value", err: args.ErrEmptyOptionValue, want: issue.BadOutputOptionId},
		{name: "nothing to run", err: build.ErrNothingToRun, want: issue.NothingToRunId},
		{name: "bad temp dir", err: fmt.Errorf("resolve: %w", &types.InvalidFilesystemPathError{Value: " "}), want: issue.BadTempDirId},
		{name: "permission denied", err: fmt.Errorf("open: %w", os.ErrPermission), want: issue.PermissionDeniedId},
		{name: "unknown error", err: errors.New("boom"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := issueFor(tt.err); got != tt.want {
				t.Errorf("issueFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestUsageError_ChattyAttachesDiagnostic(t *testing.T) {
	t.Parallel()

	wrapped := issue.NewErrorContext().
		WithOperation("parse arguments").
		WithSuggestion("Run 'rund --help' for the option summary").
		Wrap(args.ErrEmptyOptionValue).
		Build()

	var svcErr *ServiceError
	if !errors.As(usageError(wrapped, true), &svcErr) {
		t.Fatal("usageError() must wrap a *ServiceError")
	}
	if !strings.Contains(svcErr.StyledMessage, "rund --help") {
		t.Errorf("chatty styled message missing suggestion:\n%s", svcErr.StyledMessage)
	}
	if !strings.Contains(svcErr.StyledMessage, "Error chain:") {
		t.Errorf("chatty styled message missing cause chain:\n%s", svcErr.StyledMessage)
	}

	if !errors.As(usageError(wrapped, false), &svcErr) {
		t.Fatal("usageError() must wrap a *ServiceError")
	}
	if svcErr.StyledMessage != "" {
		t.Errorf("quiet mode should attach no styled message, got %q", svcErr.StyledMessage)
	}
}

func TestRenderDryRun_OmitsRunForBuildOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderDryRun(&buf, &build.Plan{
		CompilerArgv: []string{"dmd", "-ofmytmp/tool", "tool.d"},
		TempDir:      "mytmp",
	})

	if strings.Contains(buf.String(), "Run:") {
		t.Errorf("dry-run output must omit the run line when nothing runs:\n%s", buf.String())
	}
}
