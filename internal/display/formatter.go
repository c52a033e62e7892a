// Package display implements the LCD readout's state machine. The readout
// has three mutually exclusive modes: while a control is manipulated it
// mirrors that control, for a short while after release it shows the active
// project, and once idle it cycles through the three discipline percentages.
//
// The formatter is a pure clock-driven machine: it never owns a timer.
// Callers schedule ticks for the deadline it reports and feed them back via
// Advance together with the generation the deadline carried; a bumped
// generation invalidates every tick scheduled before it, so a stale idle
// transition can never fire after interaction resumes.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielguerrarmz/deckfolio/internal/control"
	"github.com/danielguerrarmz/deckfolio/internal/event"
)

// Mode identifies which of the three display modes is live.
type Mode int

const (
	// ModeActive mirrors the control currently being manipulated.
	ModeActive Mode = iota
	// ModeRecent shows the active project shortly after an interaction.
	ModeRecent
	// ModeIdle cycles through the discipline percentages.
	ModeIdle
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModeRecent:
		return "recent"
	case ModeIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Width is the number of characters per LCD line.
const Width = 12

// Lines is the two-line text of the readout.
type Lines struct {
	Top    string
	Bottom string
}

// Snapshot carries the derived values the readout needs when it is not
// mirroring an active control.
type Snapshot struct {
	ProjectCode  string  // Short code of the active project
	ProjectTitle string  // Title of the active project
	Architecture float64 // Normalized discipline percentages
	Product      float64
	Software     float64
}

// disciplines is the fixed idle-cycle order.
var disciplines = [3]string{"ARCH", "PROD", "SOFT"}

// Formatter is the readout state machine.
type Formatter struct {
	idleTimeout time.Duration
	cycleEvery  time.Duration

	mode      Mode
	active    control.ID
	activeVal float64
	cycleIdx  int
	deadline  time.Time
	gen       uint64
}

// NewFormatter creates a formatter in recent mode, as if an interaction had
// just ended at now; the idle cycle starts after one idle timeout.
func NewFormatter(idleTimeout, cycleEvery time.Duration, now time.Time) *Formatter {
	if idleTimeout <= 0 {
		idleTimeout = 2 * time.Second
	}
	if cycleEvery <= 0 {
		cycleEvery = 2 * time.Second
	}
	return &Formatter{
		idleTimeout: idleTimeout,
		cycleEvery:  cycleEvery,
		mode:        ModeRecent,
		deadline:    now.Add(idleTimeout),
	}
}

// Mode returns the live display mode.
func (f *Formatter) Mode() Mode { return f.mode }

// ActiveControl returns the mirrored control while in active mode.
func (f *Formatter) ActiveControl() control.ID { return f.active }

// Generation returns the token that must accompany the next Advance call.
// It changes whenever previously scheduled ticks become stale.
func (f *Formatter) Generation() uint64 { return f.gen }

// NextDeadline returns when the formatter next wants an Advance call. In
// active mode there is no pending deadline.
func (f *Formatter) NextDeadline() (time.Time, bool) {
	if f.mode == ModeActive {
		return time.Time{}, false
	}
	return f.deadline, true
}

// Retune replaces the idle and cycle intervals, re-basing any pending
// deadline at now. Ticks scheduled under the old intervals become stale.
func (f *Formatter) Retune(idleTimeout, cycleEvery time.Duration, now time.Time) {
	if idleTimeout > 0 {
		f.idleTimeout = idleTimeout
	}
	if cycleEvery > 0 {
		f.cycleEvery = cycleEvery
	}
	f.gen++
	switch f.mode {
	case ModeRecent:
		f.deadline = now.Add(f.idleTimeout)
	case ModeIdle:
		f.deadline = now.Add(f.cycleEvery)
	}
}

// HandleEvent feeds a control interaction into the machine. Start and update
// enter active mode and cancel any pending idle transition; end starts the
// idle countdown.
func (f *Formatter) HandleEvent(ev event.ControlEvent) {
	switch ev.Kind {
	case event.InteractionStart, event.InteractionUpdate:
		f.mode = ModeActive
		f.active = ev.Control
		f.activeVal = ev.Value
		f.gen++
	case event.InteractionEnd:
		f.mode = ModeRecent
		f.cycleIdx = 0
		f.deadline = ev.Timestamp().Add(f.idleTimeout)
		f.gen++
	}
}

// Advance applies timer progress at now. The gen parameter must be the
// generation reported when the tick was scheduled; stale ticks are ignored.
func (f *Formatter) Advance(now time.Time, gen uint64) {
	if gen != f.gen {
		return
	}
	switch f.mode {
	case ModeRecent:
		if !now.Before(f.deadline) {
			f.mode = ModeIdle
			f.cycleIdx = 0
			f.deadline = now.Add(f.cycleEvery)
		}
	case ModeIdle:
		if !now.Before(f.deadline) {
			f.cycleIdx = (f.cycleIdx + 1) % len(disciplines)
			f.deadline = now.Add(f.cycleEvery)
		}
	}
}

// Lines renders the two-line readout for the current mode.
func (f *Formatter) Lines(snap Snapshot) Lines {
	switch f.mode {
	case ModeActive:
		return Lines{
			Top:    controlLabel(f.active),
			Bottom: formatValue(f.active, f.activeVal),
		}
	case ModeIdle:
		pct := [3]float64{snap.Architecture, snap.Product, snap.Software}[f.cycleIdx]
		return Lines{
			Top:    disciplines[f.cycleIdx],
			Bottom: fmt.Sprintf("%.0f%%", pct),
		}
	default:
		return Lines{
			Top:    snap.ProjectCode,
			Bottom: truncate(strings.ToUpper(snap.ProjectTitle), Width),
		}
	}
}

// CycleDiscipline returns the discipline name shown in idle mode.
func (f *Formatter) CycleDiscipline() string {
	return disciplines[f.cycleIdx]
}

// controlLabel maps a control to its LCD label.
func controlLabel(id control.ID) string {
	switch id {
	case control.ArchitectureEmphasis:
		return "ARCH"
	case control.ProductDesignEmphasis:
		return "PROD"
	case control.SoftwareEmphasis:
		return "SOFT"
	case control.ViewMode:
		return "VIEW"
	case control.ShowMetadata:
		return "META"
	case control.DetailDepth:
		return "DEPTH"
	case control.TimelineProgress:
		return "TIME"
	default:
		return "----"
	}
}

// formatValue renders a control's value for the bottom line.
func formatValue(id control.ID, v float64) string {
	switch id {
	case control.ViewMode:
		if v != 0 {
			return "BRKDWN"
		}
		return "HERO"
	case control.ShowMetadata:
		if v != 0 {
			return "ON"
		}
		return "OFF"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
