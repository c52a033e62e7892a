package view

import (
	"strings"

	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
)

// Toggle geometry: a label row above a two-position switch.
const (
	ToggleWidth  = 10
	ToggleHeight = 2
)

// RenderToggle draws a two-position switch. offLabel and onLabel name
// the two positions, e.g. "HERO"/"BRKDWN" or "OFF"/"ON".
func RenderToggle(st styles.Styles, label, offLabel, onLabel string, on, focused bool) string {
	labelStyle := st.Label
	if focused {
		labelStyle = st.Focused
	}

	position := offLabel
	posStyle := st.Label
	if on {
		position = onLabel
		posStyle = st.Fill
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(padCenter(label, ToggleWidth)))
	b.WriteByte('\n')
	b.WriteString(posStyle.Render(padCenter("◄ "+position+" ►", ToggleWidth)))

	return b.String()
}
