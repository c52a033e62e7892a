package control

// ID identifies one of the seven board controls.
type ID string

const (
	// Emphasis knobs.
	ArchitectureEmphasis  ID = "architecture_emphasis"
	ProductDesignEmphasis ID = "product_design_emphasis"
	SoftwareEmphasis      ID = "software_emphasis"

	// Toggle switches.
	ViewMode     ID = "view_mode"
	ShowMetadata ID = "show_metadata"

	// Vertical sliders.
	DetailDepth      ID = "detail_depth"
	TimelineProgress ID = "timeline_progress"
)

// IDs lists every board control in focus order: knobs left to right, then
// toggles, then sliders.
var IDs = []ID{
	ArchitectureEmphasis,
	ProductDesignEmphasis,
	SoftwareEmphasis,
	ViewMode,
	ShowMetadata,
	DetailDepth,
	TimelineProgress,
}

// Kind classifies a control by the widget that drives it.
type Kind int

const (
	KindKnob Kind = iota
	KindToggle
	KindSlider
)

// KindOf returns the widget kind for a control ID. Unknown IDs report
// KindKnob; callers are expected to stick to the IDs list.
func KindOf(id ID) Kind {
	switch id {
	case ViewMode, ShowMetadata:
		return KindToggle
	case DetailDepth, TimelineProgress:
		return KindSlider
	default:
		return KindKnob
	}
}

// Known reports whether id is one of the board's controls.
func Known(id ID) bool {
	for _, known := range IDs {
		if id == known {
			return true
		}
	}
	return false
}
