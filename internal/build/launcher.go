// SPDX-License-Identifier: MPL-2.0

package build

import (
	"os"

	"github.com/charmbracelet/log"

	"rund/internal/args"
	"rund/internal/config"
)

// Launcher drives the preprocessing pipeline for one invocation: settings
// construction, parameter resolution and plan assembly, with chatty
// diagnostics along the way.
type Launcher struct {
	defaults config.Defaults
	clock    Clock
	logger   *log.Logger
}

// NewLauncher creates a Launcher over the given configuration defaults.
func NewLauncher(defaults config.Defaults) *Launcher {
	return NewLauncherWithClock(defaults, systemClock{})
}

// NewLauncherWithClock creates a Launcher with a custom clock for
// deterministic timing in tests.
func NewLauncherWithClock(defaults config.Defaults, clock Clock) *Launcher {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "rund",
	})

	return &Launcher{
		defaults: defaults,
		clock:    clock,
		logger:   logger,
	}
}

// Prepare computes the build plan for one parsed invocation. Chatty mode
// raises the log level and traces the effective settings and elapsed
// preparation time on stderr.
func (l *Launcher) Prepare(parsed *args.ParsedArgs) (*Plan, error) {
	start := l.clock.Now()

	settings := NewSettings(l.defaults, parsed)
	if settings.Chatty {
		l.logger.SetLevel(log.DebugLevel)
	}
	l.logger.Debug("settings merged",
		"compiler", settings.Compiler,
		"exclusions", settings.Exclusions,
		"tempdir", settings.TempDir)

	plan, err := NewPlan(settings, parsed)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("build plan ready",
		"compiler", plan.CompilerArgv[0],
		"tempdir", plan.TempDir,
		"elapsed", l.clock.Since(start))
	return plan, nil
}
