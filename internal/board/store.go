package board

import (
	"github.com/danielguerrarmz/deckfolio/internal/control"
	"github.com/danielguerrarmz/deckfolio/internal/event"
)

// Store owns the board state for one session. It is written only from the UI
// goroutine; no locking is needed because every read and write happens on
// the single event loop.
type Store struct {
	state State
	bus   *event.Bus
}

// NewStore creates a store with the default state, publishing interaction
// events on bus. A nil bus is allowed and disables publishing.
func NewStore(bus *event.Bus) *Store {
	return &Store{
		state: DefaultState(),
		bus:   bus,
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return s.state
}

// Value returns the normalized value of a control. Toggles report 0 or 1.
// Unknown IDs report 0.
func (s *Store) Value(id control.ID) float64 {
	switch id {
	case control.ArchitectureEmphasis:
		return s.state.ArchitectureEmphasis
	case control.ProductDesignEmphasis:
		return s.state.ProductDesignEmphasis
	case control.SoftwareEmphasis:
		return s.state.SoftwareEmphasis
	case control.ViewMode:
		if s.state.ViewMode == ViewBreakdown {
			return 1
		}
		return 0
	case control.ShowMetadata:
		if s.state.ShowMetadata {
			return 1
		}
		return 0
	case control.DetailDepth:
		return s.state.DetailDepth
	case control.TimelineProgress:
		return s.state.TimelineProgress
	default:
		return 0
	}
}

// SetValue replaces exactly one field, leaving the others untouched. Numeric
// values are clamped into [0,100], never rejected; negative emphasis input
// therefore lands at 0 at this boundary. For toggles, any nonzero value
// means on. Setting a control never rescales its siblings.
//
// Setting a "disabled" control (e.g. the timeline slider for a project with
// no timeline) still takes effect here; suppressing that input is the UI
// boundary's job.
func (s *Store) SetValue(id control.ID, v float64) {
	switch id {
	case control.ArchitectureEmphasis:
		s.state.ArchitectureEmphasis = control.Clamp(v)
	case control.ProductDesignEmphasis:
		s.state.ProductDesignEmphasis = control.Clamp(v)
	case control.SoftwareEmphasis:
		s.state.SoftwareEmphasis = control.Clamp(v)
	case control.ViewMode:
		if v != 0 {
			s.state.ViewMode = ViewBreakdown
		} else {
			s.state.ViewMode = ViewHero
		}
	case control.ShowMetadata:
		s.state.ShowMetadata = v != 0
	case control.DetailDepth:
		s.state.DetailDepth = control.Clamp(v)
	case control.TimelineProgress:
		s.state.TimelineProgress = control.Clamp(v)
	}
}

// Toggle flips a toggle control and reports the new value. Non-toggle IDs
// are left untouched.
func (s *Store) Toggle(id control.ID) float64 {
	switch id {
	case control.ViewMode:
		if s.state.ViewMode == ViewHero {
			s.state.ViewMode = ViewBreakdown
		} else {
			s.state.ViewMode = ViewHero
		}
	case control.ShowMetadata:
		s.state.ShowMetadata = !s.state.ShowMetadata
	}
	return s.Value(id)
}

// ActiveProject returns the active project index.
func (s *Store) ActiveProject() int {
	return s.state.ActiveProject
}

// SetActiveProject sets the active index, clamped into [0,count-1], and
// publishes a navigation event when the index changes. A non-positive count
// pins the index at 0.
func (s *Store) SetActiveProject(idx, count int) {
	if count < 1 {
		idx = 0
	} else {
		if idx < 0 {
			idx = 0
		}
		if idx >= count {
			idx = count - 1
		}
	}
	if idx == s.state.ActiveProject {
		return
	}
	prev := s.state.ActiveProject
	s.state.ActiveProject = idx
	s.publish(event.NewNavigationEvent(prev, idx))
}

// BeginInteraction announces that a control is being manipulated.
func (s *Store) BeginInteraction(id control.ID) {
	s.publish(event.NewControlEvent(id, event.InteractionStart, s.Value(id)))
}

// UpdateInteraction sets the control's value and announces the update.
func (s *Store) UpdateInteraction(id control.ID, v float64) {
	s.SetValue(id, v)
	s.publish(event.NewControlEvent(id, event.InteractionUpdate, s.Value(id)))
}

// EndInteraction announces that the control was released.
func (s *Store) EndInteraction(id control.ID) {
	s.publish(event.NewControlEvent(id, event.InteractionEnd, s.Value(id)))
}

// Nudge performs a complete one-shot interaction: start, set, end. Keyboard
// and wheel adjustments go through here so the LCD sees the same event shape
// as a pointer drag.
func (s *Store) Nudge(id control.ID, v float64) {
	s.BeginInteraction(id)
	s.UpdateInteraction(id, v)
	s.EndInteraction(id)
}

func (s *Store) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
