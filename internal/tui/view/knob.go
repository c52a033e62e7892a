package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielguerrarmz/deckfolio/internal/control"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
)

// Knob geometry. The face is a 5x3 ring centered in a 9-cell column,
// with the pointer drawn on one of eight border cells; the fourth row
// carries the label and value.
const (
	KnobWidth   = 9
	KnobHeight  = 4
	KnobCenterX = 4
	KnobCenterY = 1

	knobFacePad = 2
)

// knobFace is the resting face with no pointer.
var knobFace = [3]string{
	"╭───╮",
	"│   │",
	"╰───╯",
}

// pointerCells maps each 45° octant, clockwise from north, to the face
// cell the pointer occupies.
var pointerCells = [8]struct{ row, col int }{
	{0, 2}, // N
	{0, 4}, // NE
	{1, 4}, // E
	{2, 4}, // SE
	{2, 2}, // S
	{2, 0}, // SW
	{1, 0}, // W
	{0, 0}, // NW
}

// RenderKnob draws a rotary knob for a control value in [0,100].
func RenderKnob(st styles.Styles, label string, value float64, focused bool) string {
	angle := control.ValueToAngle(value)
	octant := int(math.Round(angle/45)) % 8

	faceStyle := st.Label
	if focused {
		faceStyle = st.Focused
	}
	pad := strings.Repeat(" ", knobFacePad)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		line := knobFace[row]
		if cell := pointerCells[octant]; cell.row == row {
			runes := []rune(line)
			b.WriteString(faceStyle.Render(string(runes[:cell.col])))
			b.WriteString(st.Needle.Render("●"))
			b.WriteString(faceStyle.Render(string(runes[cell.col+1:])))
		} else {
			b.WriteString(faceStyle.Render(line))
		}
		b.WriteString(pad)
		b.WriteByte('\n')
	}

	caption := fmt.Sprintf("%s %.0f", label, value)
	captionStyle := st.Label
	if focused {
		captionStyle = st.Focused
	}
	b.WriteString(captionStyle.Render(padCenter(caption, KnobWidth)))

	return b.String()
}

// padCenter centers s in a field of width w, truncating if needed.
func padCenter(s string, w int) string {
	runes := []rune(s)
	if len(runes) >= w {
		return string(runes[:w])
	}
	left := (w - len(runes)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(runes)-left)
}
