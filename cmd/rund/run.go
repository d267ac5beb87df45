// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rund/internal/args"
	"rund/internal/build"
	"rund/internal/config"
	"rund/internal/issue"
	"rund/pkg/types"
)

// runLauncher is the root RunE handler: raw argument vector in, rendered
// build plan out. Everything between is preprocessing; nothing here spawns
// the compiler.
func runLauncher(cmd *cobra.Command, rawArgs []string) error {
	// Cobra's own version handling relies on flag parsing, which is
	// disabled on the root command. Mirror it for the sole-flag spelling.
	if len(rawArgs) == 1 && rawArgs[0] == "--version" {
		fmt.Fprintln(cmd.OutOrStdout(), getVersionString())
		return nil
	}

	argv := args.ExpandShebang(append([]string{config.AppName}, rawArgs...))
	parsed, err := args.Parse(argv)
	if err != nil {
		wrapped := issue.NewErrorContext().
			WithOperation("parse arguments").
			WithSuggestion("Run 'rund --help' for the option summary").
			Wrap(err).
			Build()
		return usageError(wrapped, false)
	}

	switch {
	case parsed.Help:
		return cmd.Help()
	case parsed.Man:
		return showManual(cmd.OutOrStdout())
	}

	defaults, err := loadDefaults(cmd.Context())
	if err != nil {
		return configError(err, parsed.Chatty)
	}

	plan, err := build.NewLauncher(defaults).Prepare(parsed)
	if err != nil {
		wrapped := issue.NewErrorContext().
			WithOperation("assemble build plan").
			WithResource(parsed.ProgramPath).
			WithSuggestion("Use --dry-run to inspect what would be executed").
			Wrap(err).
			Build()
		return usageError(wrapped, parsed.Chatty)
	}

	if parsed.DryRun {
		renderDryRun(cmd.OutOrStdout(), plan)
		return nil
	}

	if parsed.Chatty {
		fmt.Fprint(cmd.ErrOrStderr(), plan.Render())
	}
	for _, line := range plan.CommandLines() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// loadDefaults loads the configuration and reduces it to the launcher's
// defaults. RUND_CONFIG pins a specific config file, consistent with the
// RUND_* value overrides handled inside the config package.
func loadDefaults(ctx context.Context) (config.Defaults, error) {
	opts := config.LoadOptions{}
	if path := os.Getenv(config.EnvPrefix + "_CONFIG"); path != "" {
		opts.ConfigFilePath = types.FilesystemPath(path)
	}

	cfg, err := config.NewProvider().Load(ctx, opts)
	if err != nil {
		return config.Defaults{}, err
	}
	return cfg.Defaults(), nil
}

// renderDryRun prints the computed plan without executing anything: the
// compiler invocation, the staging directory, the program invocation that
// would follow the build, and any synthesized source.
func renderDryRun(w io.Writer, plan *build.Plan) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Build:"), strings.Join(plan.CompilerArgv, " "))
	fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("TempDir:"), plan.TempDir)
	if len(plan.ProgramArgv) > 0 {
		fmt.Fprintf(w, "  %s %s\n", VerboseHighlightStyle.Render("Run:"), strings.Join(plan.ProgramArgv, " "))
	}

	if plan.SyntheticSource != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, VerboseHighlightStyle.Render("  Source:"))
		for line := range strings.SplitSeq(strings.TrimRight(plan.SyntheticSource, "\n"), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}

	fmt.Fprintln(w)
}

// usageError wraps a preprocessing failure for display: the matching issue
// catalog entry plus the usage exit code. fang prints the error message
// itself, so the styled diagnostic is only attached in chatty mode, where
// it adds the suggestion list and the numbered cause chain.
func usageError(err error, chatty bool) error {
	styled := ""
	if chatty {
		styled = ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, true) + "\n"
	}
	return &ExitError{
		Code: types.ExitUsage,
		Err:  newServiceError(err, issueFor(err), styled),
	}
}

// configError pins the configuration exit code so launcher usage failures
// and configuration failures stay distinguishable in scripts.
func configError(err error, chatty bool) error {
	id := issue.ConfigLoadFailedId
	if errors.Is(err, os.ErrPermission) {
		id = issue.PermissionDeniedId
	}

	styled := ""
	if chatty {
		styled = ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, true) + "\n"
	}
	return &ExitError{
		Code: types.ExitConfig,
		Err:  newServiceError(err, id, styled),
	}
}

// issueFor maps a launcher error to its issue catalog entry. Errors outside
// the catalog map to zero, which renders no catalog section.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, args.ErrMissingFlagValue):
		return issue.MissingFlagValueId
	case errors.Is(err, args.ErrDuplicateOutputFile), errors.Is(err, args.ErrDuplicateOutputDir):
		return issue.DuplicateOutputOptionId
	case errors.Is(err, args.ErrUnsupportedOption),
		errors.Is(err, args.ErrUnrecognizedOption),
		errors.Is(err, args.ErrEmptyOptionValue),
		errors.Is(err, args.ErrInvalidOption):
		return issue.BadOutputOptionId
	case errors.Is(err, build.ErrNothingToRun):
		return issue.NothingToRunId
	case errors.Is(err, types.ErrInvalidFilesystemPath):
		return issue.BadTempDirId
	case errors.Is(err, os.ErrPermission):
		return issue.PermissionDeniedId
	default:
		return 0
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
