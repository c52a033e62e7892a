package view

import (
	"strings"

	"github.com/danielguerrarmz/deckfolio/internal/nav"
	"github.com/danielguerrarmz/deckfolio/internal/project"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
	"github.com/danielguerrarmz/deckfolio/internal/util"
)

// DialHeight covers the needle row, the code strip and the title row.
const DialHeight = 3

// RenderDial draws the project selector as a flattened 180° arc. Each
// project's short code sits at the column its dial angle maps to;
// rotation shifts the whole strip so the active code settles under the
// needle. rotation is the animated value, not necessarily at rest.
func RenderDial(st styles.Styles, titles []string, activeIdx int, rotation float64, width int) string {
	total := len(titles)
	if width < 8 || total == 0 {
		return ""
	}

	strip := make([]rune, width)
	for i := range strip {
		strip[i] = '·'
	}
	// Track which columns belong to the active code for styling.
	active := make([]bool, width)

	step := nav.DialStep(total)
	for idx := 0; idx < total; idx++ {
		// Item idx rests at 90-idx*step on the arc; rotation carries it
		// toward the needle at 0.
		angle := 90 - float64(idx)*step + rotation
		if total == 1 {
			angle = 0
		}
		if angle < -90 || angle > 90 {
			continue
		}
		col := int((angle + 90) / 180 * float64(width-1))
		code := project.ShortCode(idx)
		start := col - len(code)/2
		for i, r := range code {
			p := start + i
			if p < 0 || p >= width {
				continue
			}
			strip[p] = r
			if idx == activeIdx {
				active[p] = true
			}
		}
	}

	// The zero angle maps to column (width-1)/2, so the needle sits there
	// too; width/2 would land one cell right of the code on even widths.
	needleCol := (width - 1) / 2
	needle := strings.Repeat(" ", needleCol) + "▼"

	var stripOut strings.Builder
	for i := 0; i < width; i++ {
		cell := string(strip[i])
		switch {
		case active[i]:
			stripOut.WriteString(st.Needle.Render(cell))
		case strip[i] == '·':
			stripOut.WriteString(st.Label.Render(cell))
		default:
			stripOut.WriteString(st.Value.Render(cell))
		}
	}

	title := ""
	if activeIdx >= 0 && activeIdx < total {
		title = util.TruncateString(titles[activeIdx], width)
	}

	var b strings.Builder
	b.WriteString(st.Needle.Render(needle))
	b.WriteByte('\n')
	b.WriteString(stripOut.String())
	b.WriteByte('\n')
	b.WriteString(st.Title.Render(padCenter(title, width)))
	return b.String()
}
