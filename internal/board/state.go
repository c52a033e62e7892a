package board

// ViewMode selects how the content panel presents the active project.
type ViewMode int

const (
	// ViewHero shows the large single-column presentation.
	ViewHero ViewMode = iota
	// ViewBreakdown shows the three discipline columns.
	ViewBreakdown
)

// String returns the mode name used in config files and the LCD readout.
func (m ViewMode) String() string {
	if m == ViewBreakdown {
		return "breakdown"
	}
	return "hero"
}

// State is the control board record. Emphasis values are independent; nothing
// forces them to sum to 100 — normalization happens only at display time.
type State struct {
	ArchitectureEmphasis  float64
	ProductDesignEmphasis float64
	SoftwareEmphasis      float64
	ViewMode              ViewMode
	ShowMetadata          bool
	DetailDepth           float64
	TimelineProgress      float64
	ActiveProject         int
}

// DefaultState returns the fixed per-session initial state.
func DefaultState() State {
	return State{
		ArchitectureEmphasis:  33.33,
		ProductDesignEmphasis: 33.33,
		SoftwareEmphasis:      33.33,
		ViewMode:              ViewHero,
		ShowMetadata:          false,
		DetailDepth:           100,
		TimelineProgress:      100,
		ActiveProject:         0,
	}
}
