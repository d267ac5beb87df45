// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"rund/internal/issue"
)

// explainTopics maps human-friendly topic names to issue catalog entries.
// Every catalog entry must have exactly one topic name here.
var explainTopics = map[string]issue.Id{
	"source-not-found":   issue.SourceNotFoundId,
	"compiler-not-found": issue.CompilerNotFoundId,
	"build-failed":       issue.BuildFailedId,
	"config":             issue.ConfigLoadFailedId,
	"output-options":     issue.BadOutputOptionId,
	"duplicate-output":   issue.DuplicateOutputOptionId,
	"missing-value":      issue.MissingFlagValueId,
	"tmpdir":             issue.BadTempDirId,
	"nothing-to-run":     issue.NothingToRunId,
	"permissions":        issue.PermissionDeniedId,
}

var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Explain launcher failures and concepts",
	Long: `Explain launcher failures and concepts.

Without a topic, lists everything the catalog covers. With a topic, renders
the full explanation, the same text shown when the matching failure occurs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, cmdArgs []string) error {
	out := cmd.OutOrStdout()

	if len(cmdArgs) == 0 {
		fmt.Fprintln(out, TitleStyle.Render("Topics"))
		fmt.Fprintln(out)
		for _, name := range slices.Sorted(maps.Keys(explainTopics)) {
			entry := issue.Get(explainTopics[name])
			fmt.Fprintf(out, "  %s  %s\n", CmdStyle.Render(fmt.Sprintf("%-18s", name)), issueTitle(entry.MarkdownMsg()))
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run %s for details.\n", CmdStyle.Render("rund explain <topic>"))
		return nil
	}

	id, ok := explainTopics[cmdArgs[0]]
	if !ok {
		return fmt.Errorf("unknown topic %q: run 'rund explain' for the topic list", cmdArgs[0])
	}

	rendered, err := issue.Get(id).Render("dark")
	if err != nil {
		return fmt.Errorf("failed to render topic %q: %w", cmdArgs[0], err)
	}

	fmt.Fprint(out, rendered)
	return nil
}

// issueTitle extracts the level-1 heading of an issue body for listings.
func issueTitle(md issue.MarkdownMsg) string {
	for line := range strings.SplitSeq(string(md), "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
