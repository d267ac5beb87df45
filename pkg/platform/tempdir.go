// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"runtime"
)

// Temp-directory suffix strategy constants.
const (
	// SuffixUserScoped derives the scratch subdirectory name from the
	// current user's numeric id so concurrent users on a shared system
	// never collide.
	SuffixUserScoped TempSuffixStrategy = "user-scoped"
	// SuffixShared uses a fixed subdirectory name on platforms without a
	// usable numeric user identity.
	SuffixShared TempSuffixStrategy = "shared"
)

// TempSuffixStrategy selects how the launcher names its scratch
// subdirectory under the system temporary directory.
type TempSuffixStrategy string

// CurrentTempStrategy returns the strategy for the OS the launcher is
// running on.
func CurrentTempStrategy() TempSuffixStrategy {
	return TempStrategyFor(runtime.GOOS)
}

// TempStrategyFor returns the temp-suffix strategy for a given OS name.
// This is a pure function that does not depend on the running platform,
// making it directly testable for every OS.
func TempStrategyFor(osName string) TempSuffixStrategy {
	switch osName {
	case Windows:
		return SuffixShared
	default:
		return SuffixUserScoped
	}
}

// Subdir returns the scratch subdirectory name the strategy produces for
// the given tool name and numeric user id. The uid is ignored by
// SuffixShared.
func (s TempSuffixStrategy) Subdir(tool string, uid int) string {
	if s == SuffixUserScoped {
		return fmt.Sprintf(".%s-%d", tool, uid)
	}
	return tool
}
