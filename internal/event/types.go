// Package event defines the events that decouple deckfolio's components.
// Every widget interaction is reported as a single discriminated control
// event instead of per-control callback wiring, so consumers like the LCD
// formatter never need to know which widget type produced an input.
package event

import (
	"time"

	"github.com/danielguerrarmz/deckfolio/internal/control"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "control.update", "nav.changed").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Control Events
// -----------------------------------------------------------------------------

// InteractionKind discriminates the phases of a control interaction.
type InteractionKind int

const (
	// InteractionStart marks the beginning of a drag or adjustment session.
	InteractionStart InteractionKind = iota
	// InteractionUpdate carries a new value while the session is live.
	InteractionUpdate
	// InteractionEnd marks the release of the control.
	InteractionEnd
)

// String returns a human-readable name for an interaction kind.
func (k InteractionKind) String() string {
	switch k {
	case InteractionStart:
		return "start"
	case InteractionUpdate:
		return "update"
	case InteractionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ControlEvent is emitted for every phase of a control interaction.
type ControlEvent struct {
	baseEvent
	Control control.ID      // Which board control was touched
	Kind    InteractionKind // start, update, or end
	Value   float64         // Current value; toggles report 0 or 1
}

// EventTypeControl is the bus topic for ControlEvent.
const EventTypeControl = "control.interaction"

// NewControlEvent creates a ControlEvent.
func NewControlEvent(id control.ID, kind InteractionKind, value float64) ControlEvent {
	return ControlEvent{
		baseEvent: newBaseEvent(EventTypeControl),
		Control:   id,
		Kind:      kind,
		Value:     value,
	}
}

// -----------------------------------------------------------------------------
// Navigation Events
// -----------------------------------------------------------------------------

// NavigationEvent is emitted when the active project changes.
type NavigationEvent struct {
	baseEvent
	Previous int // Previous project index
	Current  int // New active project index
}

// EventTypeNavigation is the bus topic for NavigationEvent.
const EventTypeNavigation = "nav.changed"

// NewNavigationEvent creates a NavigationEvent.
func NewNavigationEvent(previous, current int) NavigationEvent {
	return NavigationEvent{
		baseEvent: newBaseEvent(EventTypeNavigation),
		Previous:  previous,
		Current:   current,
	}
}

// -----------------------------------------------------------------------------
// Catalog Events
// -----------------------------------------------------------------------------

// CatalogReloadedEvent is emitted when the projects file is reloaded from
// disk, so the board can re-clamp its active index.
type CatalogReloadedEvent struct {
	baseEvent
	Count int // Number of projects after the reload
}

// EventTypeCatalogReloaded is the bus topic for CatalogReloadedEvent.
const EventTypeCatalogReloaded = "catalog.reloaded"

// NewCatalogReloadedEvent creates a CatalogReloadedEvent.
func NewCatalogReloadedEvent(count int) CatalogReloadedEvent {
	return CatalogReloadedEvent{
		baseEvent: newBaseEvent(EventTypeCatalogReloaded),
		Count:     count,
	}
}
