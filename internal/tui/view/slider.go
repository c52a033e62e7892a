package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
)

// Slider geometry. The track spans SliderTrackHeight rows; the caption
// row below shows label and value.
const (
	SliderTrackHeight = 8
	SliderWidth       = 7
	SliderHeight      = SliderTrackHeight + 1
)

// RenderSlider draws a vertical fader. The thumb sits at the top of the
// track at value 100 and at the bottom at value 0. A disabled slider
// renders muted with no thumb highlight.
func RenderSlider(st styles.Styles, label string, value float64, focused, enabled bool) string {
	thumbRow := int(math.Round((1 - value/100) * float64(SliderTrackHeight-1)))

	trackStyle := st.Label
	thumbStyle := st.Needle
	fillStyle := st.Fill
	if focused {
		trackStyle = st.Focused
	}
	if !enabled {
		thumbStyle = st.Label
		fillStyle = st.Label
	}

	var b strings.Builder
	for row := 0; row < SliderTrackHeight; row++ {
		var cell string
		switch {
		case row == thumbRow:
			cell = thumbStyle.Render("██▌")
		case row > thumbRow:
			cell = fillStyle.Render(" ┃ ")
		default:
			cell = trackStyle.Render(" │ ")
		}
		b.WriteString(padCenterStyled(cell, 3, SliderWidth))
		b.WriteByte('\n')
	}

	caption := fmt.Sprintf("%s %.0f", label, value)
	captionStyle := st.Label
	if focused {
		captionStyle = st.Focused
	}
	b.WriteString(captionStyle.Render(padCenter(caption, SliderWidth)))

	return b.String()
}

// padCenterStyled centers an already styled cell of known visible width
// inside a wider field.
func padCenterStyled(cell string, visible, w int) string {
	if visible >= w {
		return cell
	}
	left := (w - visible) / 2
	return strings.Repeat(" ", left) + cell + strings.Repeat(" ", w-visible-left)
}
