// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestGetVersionString(t *testing.T) {
	// Not parallel: the subtests mutate the package-level ldflags vars.

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		want      string
	}{
		{
			name:      "stamped release",
			version:   "v1.2.3",
			commit:    "abc1234",
			buildDate: "2026-06-15T10:00:00Z",
			want:      "v1.2.3 (commit abc1234, built 2026-06-15T10:00:00Z)",
		},
		{
			name:      "unstamped binary",
			version:   "dev",
			commit:    "unknown",
			buildDate: "unknown",
			want:      "dev (source build)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
			t.Cleanup(func() {
				Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
			})

			Version, Commit, BuildDate = tt.version, tt.commit, tt.buildDate
			if got := getVersionString(); got != tt.want {
				t.Errorf("getVersionString() = %q, want %q", got, tt.want)
			}
		})
	}
}
