package tui

import (
	"github.com/danielguerrarmz/deckfolio/internal/control"
	"github.com/danielguerrarmz/deckfolio/internal/tui/view"
)

// Board geometry. The left column has a fixed width; the content panel
// takes the rest. Row offsets below must track the render order in
// Model.View exactly, since mouse hit-testing reads them.
const (
	BoardWidth  = 29
	BoardGutter = 2

	MinTermWidth  = 60
	MinTermHeight = 28

	rowTitle   = 0
	rowLCD     = 2
	rowKnobs   = 7
	rowToggles = 12
	rowSliders = 15

	dialRow = 0
)

// rect is a widget hitbox in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// boardLayout holds the hitboxes for one terminal size.
type boardLayout struct {
	width, height int

	lcd      rect
	controls map[control.ID]rect
	dial     rect
	content  rect
}

// computeLayout places every widget for the given terminal size.
func computeLayout(width, height int) boardLayout {
	l := boardLayout{
		width:    width,
		height:   height,
		controls: make(map[control.ID]rect, len(control.IDs)),
	}

	l.lcd = rect{x: 6, y: rowLCD, w: 16, h: 4}

	knobIDs := []control.ID{
		control.ArchitectureEmphasis,
		control.ProductDesignEmphasis,
		control.SoftwareEmphasis,
	}
	for i, id := range knobIDs {
		l.controls[id] = rect{
			x: i * (view.KnobWidth + 1),
			y: rowKnobs,
			w: view.KnobWidth,
			h: view.KnobHeight,
		}
	}

	l.controls[control.ViewMode] = rect{x: 1, y: rowToggles, w: view.ToggleWidth, h: view.ToggleHeight}
	l.controls[control.ShowMetadata] = rect{x: 16, y: rowToggles, w: view.ToggleWidth, h: view.ToggleHeight}

	l.controls[control.DetailDepth] = rect{x: 4, y: rowSliders, w: view.SliderWidth, h: view.SliderHeight}
	l.controls[control.TimelineProgress] = rect{x: 17, y: rowSliders, w: view.SliderWidth, h: view.SliderHeight}

	contentX := BoardWidth + BoardGutter
	contentW := width - contentX
	if contentW < 0 {
		contentW = 0
	}

	l.dial = rect{x: contentX, y: dialRow, w: contentW, h: view.DialHeight}
	l.content = rect{
		x: contentX,
		y: dialRow + view.DialHeight + 1,
		w: contentW,
		h: height - view.DialHeight - 2,
	}

	return l
}

// hitControl returns the control whose hitbox contains the point.
func (l boardLayout) hitControl(x, y int) (control.ID, bool) {
	for id, r := range l.controls {
		if r.contains(x, y) {
			return id, true
		}
	}
	return "", false
}

// knobCenter returns the absolute cell of a knob's face center.
func (l boardLayout) knobCenter(id control.ID) (x, y int) {
	r := l.controls[id]
	return r.x + view.KnobCenterX, r.y + view.KnobCenterY
}

// sliderTrack returns the top and bottom rows of a slider's track.
func (l boardLayout) sliderTrack(id control.ID) (top, bottom int) {
	r := l.controls[id]
	return r.y, r.y + view.SliderTrackHeight - 1
}
