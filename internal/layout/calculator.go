// Package layout derives presentation values from board state: proportional
// column widths and opacities from the emphasis knobs, visibility tiers from
// the detail slider, and the timeline stage label. Everything here is a pure
// function of its inputs.
package layout

import (
	"math"

	"github.com/danielguerrarmz/deckfolio/internal/control"
)

// ColumnWidths holds the three discipline column widths as percentages that
// sum to 100.
type ColumnWidths struct {
	Architecture  float64
	ProductDesign float64
	Software      float64
}

// Columns normalizes the three emphasis values into column widths. A zero
// sum falls back to equal thirds so the division is always defined.
func Columns(architecture, productDesign, software float64) ColumnWidths {
	a := control.Clamp(architecture)
	p := control.Clamp(productDesign)
	s := control.Clamp(software)

	sum := a + p + s
	if sum == 0 {
		third := 100.0 / 3
		return ColumnWidths{Architecture: third, ProductDesign: third, Software: third}
	}
	return ColumnWidths{
		Architecture:  a / sum * 100,
		ProductDesign: p / sum * 100,
		Software:      s / sum * 100,
	}
}

// Opacity maps an emphasis value to a column opacity in [0.4, 1.0]. Each
// column's opacity is independent of its siblings.
func Opacity(v float64) float64 {
	return 0.4 + control.Clamp(v)/100*0.6
}

// Visibility reports which content tiers are shown at a given detail depth.
// The gates are monotonic: a tier never hides when a deeper one activates.
type Visibility struct {
	Overview bool // depth >= 20
	Columns  bool // depth >= 40
	Process  bool // depth >= 60
	Specs    bool // depth >= 80
}

// VisibilityAt evaluates the threshold gates for a detail depth.
func VisibilityAt(depth float64) Visibility {
	return Visibility{
		Overview: depth >= 20,
		Columns:  depth >= 40,
		Process:  depth >= 60,
		Specs:    depth >= 80,
	}
}

// Stage is a discrete label for the timeline slider position.
type Stage int

const (
	StageConcept Stage = iota
	StageDevelopment
	StageRefinement
	StageBuild
	StageFinal
)

// String returns the stage label shown on the timeline strip.
func (s Stage) String() string {
	switch s {
	case StageConcept:
		return "CONCEPT"
	case StageDevelopment:
		return "DEVELOPMENT"
	case StageRefinement:
		return "REFINEMENT"
	case StageBuild:
		return "BUILD"
	case StageFinal:
		return "FINAL"
	default:
		return "UNKNOWN"
	}
}

// Stages lists all stages in timeline order.
var Stages = []Stage{StageConcept, StageDevelopment, StageRefinement, StageBuild, StageFinal}

// StageAt buckets a timeline progress value into five equal bands with
// boundaries at 20/40/60/80. The last band is closed at 100.
func StageAt(progress float64) Stage {
	p := control.Clamp(progress)
	switch {
	case p < 20:
		return StageConcept
	case p < 40:
		return StageDevelopment
	case p < 60:
		return StageRefinement
	case p < 80:
		return StageBuild
	default:
		return StageFinal
	}
}

// DetailTier returns the 1..5 numeric readout for the detail depth slider:
// ceil(depth/100*5), floored at 1 so the display always shows a tier.
func DetailTier(depth float64) int {
	tier := int(math.Ceil(control.Clamp(depth) / 100 * 5))
	if tier < 1 {
		return 1
	}
	if tier > 5 {
		return 5
	}
	return tier
}
