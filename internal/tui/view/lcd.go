package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danielguerrarmz/deckfolio/internal/display"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
)

// RenderLCD draws the two-line readout in its backlit frame.
func RenderLCD(st styles.Styles, lines display.Lines) string {
	top := st.LCDText.Render(padRight(lines.Top, display.Width))
	bottom := st.LCDText.Render(padRight(lines.Bottom, display.Width))
	return st.LCDFrame.Render(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
}

func padRight(s string, w int) string {
	runes := []rune(s)
	if len(runes) >= w {
		return string(runes[:w])
	}
	for len(runes) < w {
		runes = append(runes, ' ')
	}
	return string(runes)
}
