// SPDX-License-Identifier: MPL-2.0

package build

import (
	"slices"

	"rund/internal/args"
	"rund/internal/config"
	"rund/pkg/types"
)

// Settings is the effective configuration for one launcher invocation,
// computed once from the configuration defaults and the parsed command
// line. A value is constructed by NewSettings and passed by pointer to
// everything downstream; nothing mutates it afterward.
type Settings struct {
	Chatty              bool
	BuildOnly           bool
	DryRun              bool
	Force               bool
	PreserveOutputPaths bool

	// Compiler is the compiler name after the command-line override and
	// configuration fallback are merged. Resolution to an on-disk
	// executable happens later, in the plan.
	Compiler types.CompilerName

	// ExeFile is the requested output executable path (-of), empty when
	// the launcher should pick a location in the temp directory.
	ExeFile string

	// TempDir is the user-requested temp directory, empty when the
	// platform default applies. ResolveTempDir computes the effective
	// directory from it.
	TempDir string

	Exclusions []types.PackagePattern
	ExtraFiles []string
}

// NewSettings merges configuration defaults with the parsed command line.
// Command-line values win wherever both supply one.
func NewSettings(defaults config.Defaults, parsed *args.ParsedArgs) *Settings {
	s := &Settings{
		Chatty:              parsed.Chatty || defaults.Chatty,
		BuildOnly:           parsed.BuildOnly,
		DryRun:              parsed.DryRun,
		Force:               parsed.Force,
		PreserveOutputPaths: parsed.Output.PreservePaths,
		ExeFile:             parsed.Output.File,
		TempDir:             parsed.TempDir,
		ExtraFiles:          slices.Clone(parsed.ExtraFiles),
	}

	if s.TempDir == "" {
		s.TempDir = defaults.TempDir
	}

	s.Compiler = types.CompilerName(parsed.Compiler)
	if s.Compiler == "" {
		s.Compiler = defaults.Compiler
	}

	s.Exclusions = mergeExclusions(defaults.Exclusions, parsed.Inclusions, parsed.Exclusions)
	return s
}

// mergeExclusions computes the effective exclusion list: the default
// entries minus those pruned by --include, plus every --exclude addition.
// An inclusion prunes each default entry that falls under it; user
// additions never participate in the pruning, so flag order on the command
// line cannot change the outcome.
func mergeExclusions(defaults []types.PackagePattern, inclusions, exclusions []string) []types.PackagePattern {
	merged := make([]types.PackagePattern, 0, len(defaults)+len(exclusions))
	for _, def := range defaults {
		pruned := false
		for _, inc := range inclusions {
			if types.PackagePattern(inc).Matches(string(def)) {
				pruned = true
				break
			}
		}
		if !pruned {
			merged = append(merged, def)
		}
	}
	for _, exc := range exclusions {
		merged = append(merged, types.PackagePattern(exc))
	}
	return merged
}
