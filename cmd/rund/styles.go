// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Shared color palette for CLI output, tuned for dark terminals.
// Primary is the D logo crimson, so rund output reads as part of the D
// toolchain rather than a generic CLI.
const (
	// ColorPrimary is crimson, for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#B03931")

	// ColorMuted is gray, for subtitles and de-emphasized text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, for positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is bright red, for failures. Kept visibly hotter than
	// ColorPrimary so error lines stand out against crimson titles.
	ColorError = lipgloss.Color("#F43F5E")

	// ColorWarning is amber, for caution states.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, for commands and interactive elements.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray, for debug output and fine detail.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

// Reusable lipgloss styles built from the palette. Callers may extend
// them with margins or padding where a screen needs it.
var (
	// TitleStyle marks primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// SubtitleStyle marks secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// SuccessStyle marks success messages.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// ErrorStyle marks error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	// WarningStyle marks warning messages.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// CmdStyle marks command names and code fragments.
	CmdStyle = lipgloss.NewStyle().Foreground(ColorHighlight)

	// VerboseHighlightStyle marks emphasized labels in plan listings.
	VerboseHighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
)
