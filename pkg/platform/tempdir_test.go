// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestTempStrategyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		osName string
		want   TempSuffixStrategy
	}{
		{"linux is user scoped", Linux, SuffixUserScoped},
		{"darwin is user scoped", Darwin, SuffixUserScoped},
		{"other unixes are user scoped", "freebsd", SuffixUserScoped},
		{"windows is shared", Windows, SuffixShared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TempStrategyFor(tt.osName); got != tt.want {
				t.Errorf("TempStrategyFor(%q) = %q, want %q", tt.osName, got, tt.want)
			}
		})
	}
}

func TestTempSuffixStrategySubdir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy TempSuffixStrategy
		tool     string
		uid      int
		want     string
	}{
		{"user scoped embeds uid", SuffixUserScoped, "rund", 1000, ".rund-1000"},
		{"user scoped root", SuffixUserScoped, "rund", 0, ".rund-0"},
		{"shared ignores uid", SuffixShared, "rund", 1000, "rund"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.strategy.Subdir(tt.tool, tt.uid); got != tt.want {
				t.Errorf("%q.Subdir(%q, %d) = %q, want %q", tt.strategy, tt.tool, tt.uid, got, tt.want)
			}
		})
	}
}
