// Package util provides small string helpers shared across the board
// renderers.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateString clips s to maxLen runes, appending "..." when it was
// cut. It knows nothing about ANSI escapes or wide characters; for
// styled terminal output use TruncateANSI.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateANSI clips s to maxWidth visual columns, appending "..." when
// it was cut. Escape sequences and wide characters are measured
// correctly, so styled text keeps its styling.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}
