// SPDX-License-Identifier: MPL-2.0

package build

import "time"

// Clock abstracts time for the launcher so tests can pin the elapsed
// durations reported in chatty traces.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// systemClock is the production Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }
