// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the release version, stamped by -ldflags.
	Version = "dev"
	// Commit is the git revision the binary was built from, stamped by -ldflags.
	Commit = "unknown"
	// BuildDate is the build timestamp, stamped by -ldflags.
	BuildDate = "unknown"

	// rootCmd represents the launcher invocation itself. Flag parsing is
	// disabled: the argument grammar (program boundary, compound -o
	// options, compiler passthrough) is not expressible as Cobra flags, so
	// the raw vector flows untouched to the launcher's own parser.
	rootCmd = &cobra.Command{
		Use:   "rund [options...] program.d [program arguments...]",
		Short: "Build and run D programs in one step",
		Long: TitleStyle.Render("rund") + SubtitleStyle.Render(" - Build and run D programs in one step") + `

rund compiles a single D source file together with its local imports and
runs the result, so a .d file behaves like a script. Options before the
program file belong to rund or are forwarded to the compiler; everything
after it belongs to your program.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Write a D program with a main() function
  2. Run it with: rund myprog.d
  3. Or skip the file entirely: rund --eval='writeln(1 + 2)'

` + SubtitleStyle.Render("Examples:") + `
  rund myprog.d args...      Build and run myprog.d
  rund -O -inline myprog.d   Forward optimizer flags to the compiler
  rund --dry-run myprog.d    Show the build plan without building
  rund --man                 Show the full manual
  rund config show           Show current configuration`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runLauncher,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(explainCmd)
}

// getVersionString formats the version line shown by --version.
func getVersionString() string {
	if Version == "dev" {
		return "dev (source build)"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and exits the process with the launcher's
// exit code. Called once from main.main().
func Execute() {
	// fang overrides rootCmd.Version, so the version string goes in
	// through the option.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// fang has already printed the error itself; follow it with the
		// issue catalog entry when the failure carries one.
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			svcErr.Render(os.Stderr)
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
