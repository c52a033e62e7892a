package tui

import (
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielguerrarmz/deckfolio/internal/config"
	"github.com/danielguerrarmz/deckfolio/internal/control"
	"github.com/danielguerrarmz/deckfolio/internal/event"
	"github.com/danielguerrarmz/deckfolio/internal/nav"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
	"github.com/danielguerrarmz/deckfolio/internal/tui/view"
)

// Update handles all input and timer messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = computeLayout(msg.Width, msg.Height)
		m.content.Resize(m.layout.content.w)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case displayTickMsg:
		m.formatter.Advance(msg.at, msg.gen)
		return m, m.scheduleDisplay()

	case animTickMsg:
		return m.stepSpring()

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case catalogReloadedMsg:
		prev := m.selector.Index()
		m.catalog = msg.catalog
		m.selector.Resize(m.catalog.Len())
		m.store.SetActiveProject(m.selector.Index(), m.catalog.Len())
		m.rotation = nav.DialRotation(m.catalog.Len(), m.selector.Index())
		m.rotationVel = 0
		m.bus.Publish(event.NewCatalogReloadedEvent(m.catalog.Len()))
		m.logger.Info("catalog reloaded", "count", m.catalog.Len(), "previous_index", prev)
		return m.setStatus("CATALOG RELOADED")

	case catalogErrMsg:
		m.logger.Warn("catalog reload failed", "error", msg.err)
		return m.setStatus("RELOAD FAILED")

	case configReloadedMsg:
		return m.applyConfig(msg.cfg)

	case configErrMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		return m.setStatus("CONFIG INVALID")
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextControl):
		m.focus = (m.focus + 1) % len(control.IDs)
		return m, nil

	case key.Matches(msg, m.keys.PrevControl):
		m.focus = (m.focus - 1 + len(control.IDs)) % len(control.IDs)
		return m, nil

	case key.Matches(msg, m.keys.CoarseUp):
		return m.adjustFocused(true, 10)

	case key.Matches(msg, m.keys.CoarseDown):
		return m.adjustFocused(false, 10)

	case key.Matches(msg, m.keys.Increase):
		return m.adjustFocused(true, m.cfg.UI.WheelStep)

	case key.Matches(msg, m.keys.Decrease):
		return m.adjustFocused(false, m.cfg.UI.WheelStep)

	case key.Matches(msg, m.keys.Toggle):
		if control.KindOf(m.focusedControl()) == control.KindToggle {
			return m.flipToggle(m.focusedControl())
		}
		return m, nil

	case key.Matches(msg, m.keys.NextProject):
		return m.navigate(true)

	case key.Matches(msg, m.keys.PrevProject):
		return m.navigate(false)

	case key.Matches(msg, m.keys.CopyLink):
		return m.copyLink()
	}

	return m, nil
}

// adjustFocused applies a wheel-style step to the focused control.
// Toggles flip on increase and clear on decrease; the timeline slider
// ignores input while the active project has no timeline.
func (m Model) adjustFocused(forward bool, step float64) (tea.Model, tea.Cmd) {
	id := m.focusedControl()

	if control.KindOf(id) == control.KindToggle {
		want := 0.0
		if forward {
			want = 1
		}
		if m.store.Value(id) != want {
			return m.flipToggle(id)
		}
		return m, nil
	}

	if id == control.TimelineProgress && !m.timelineEnabled() {
		return m, nil
	}

	next := control.AdjustByWheel(m.store.Value(id), forward, step)
	m.store.Nudge(id, next)
	return m, m.scheduleDisplay()
}

// flipToggle runs a full interaction so the readout mirrors the flip.
func (m Model) flipToggle(id control.ID) (tea.Model, tea.Cmd) {
	current := m.store.Value(id)
	next := 1 - current
	m.store.Nudge(id, next)
	return m, m.scheduleDisplay()
}

// navigate moves the dial one project forward or backward.
func (m Model) navigate(forward bool) (tea.Model, tea.Cmd) {
	if forward {
		m.selector.Forward()
	} else {
		m.selector.Backward()
	}
	return m.settleOnSelection()
}

// selectProject jumps straight to an index.
func (m Model) selectProject(idx int) (tea.Model, tea.Cmd) {
	m.selector.Select(idx)
	return m.settleOnSelection()
}

// settleOnSelection records the new selection and spins the dial
// toward it.
func (m Model) settleOnSelection() (tea.Model, tea.Cmd) {
	m.store.SetActiveProject(m.selector.Index(), m.catalog.Len())

	var cmd tea.Cmd
	if !m.animating {
		m.animating = true
		cmd = animTickCmd()
	}
	return m, cmd
}

// stepSpring advances the dial animation one frame.
func (m Model) stepSpring() (tea.Model, tea.Cmd) {
	target := nav.DialRotation(m.catalog.Len(), m.selector.Index())
	m.rotation, m.rotationVel = m.spring.Update(m.rotation, m.rotationVel, target)

	if math.Abs(m.rotation-target) < 0.05 && math.Abs(m.rotationVel) < 0.05 {
		m.rotation = target
		m.rotationVel = 0
		m.animating = false
		return m, nil
	}
	return m, animTickCmd()
}

// copyLink puts the active project's link on the system clipboard.
func (m Model) copyLink() (tea.Model, tea.Cmd) {
	proj := m.activeProject()
	if proj.Link == "" {
		return m.setStatus("NO LINK")
	}
	if err := clipboard.WriteAll(proj.Link); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return m.setStatus("COPY FAILED")
	}
	return m.setStatus("LINK COPIED")
}

// setStatus shows a transient footer status for a short while.
// applyConfig adopts hot-reloaded settings. Mouse reporting is fixed at
// program start, so the running value is kept regardless of the file.
func (m Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	cfg.UI.Mouse = m.cfg.UI.Mouse
	prevTheme := m.cfg.UI.Theme
	m.cfg = cfg

	if cfg.UI.Theme != prevTheme {
		m.st = styles.New(styles.ByName(cfg.UI.Theme))
		m.content = view.NewContent(m.st, m.content.Width())
	}
	m.formatter.Retune(cfg.Display.IdleTimeout(), cfg.Display.CycleInterval(), time.Now())

	m.logger.Info("config reloaded", "theme", cfg.UI.Theme)
	updated, expire := m.setStatus("CONFIG RELOADED")
	model := updated.(Model)
	return model, tea.Batch(expire, model.scheduleDisplay())
}

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusID++
	return m, statusExpireCmd(m.statusID, statusLife)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.handleWheel(msg.X, msg.Y, true)
	case tea.MouseButtonWheelDown:
		return m.handleWheel(msg.X, msg.Y, false)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.handlePress(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if m.drag != "" {
			return m.dragTo(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if m.drag != "" {
			id := m.drag
			m.drag = ""
			m.store.EndInteraction(id)
			return m, m.scheduleDisplay()
		}
	}

	return m, nil
}

// handleWheel routes a wheel tick: fine adjust over a control, project
// navigation over the deck.
func (m Model) handleWheel(x, y int, forward bool) (tea.Model, tea.Cmd) {
	if id, ok := m.layout.hitControl(x, y); ok {
		kind := control.KindOf(id)
		if kind == control.KindToggle {
			return m, nil
		}
		if id == control.TimelineProgress && !m.timelineEnabled() {
			return m, nil
		}
		next := control.AdjustByWheel(m.store.Value(id), forward, m.cfg.UI.WheelStep)
		m.store.Nudge(id, next)
		return m, m.scheduleDisplay()
	}

	if m.layout.dial.contains(x, y) || m.layout.content.contains(x, y) {
		return m.navigate(forward)
	}
	return m, nil
}

// handlePress starts a drag session or fires a discrete click.
func (m Model) handlePress(x, y int) (tea.Model, tea.Cmd) {
	if id, ok := m.layout.hitControl(x, y); ok {
		switch control.KindOf(id) {
		case control.KindToggle:
			return m.flipToggle(id)
		case control.KindSlider:
			if id == control.TimelineProgress && !m.timelineEnabled() {
				return m, nil
			}
			m.drag = id
			m.store.BeginInteraction(id)
			return m.dragTo(x, y)
		case control.KindKnob:
			m.drag = id
			m.store.BeginInteraction(id)
			return m.dragTo(x, y)
		}
	}

	if m.layout.dial.contains(x, y) {
		return m.selectProject(m.dialIndexAt(x))
	}
	return m, nil
}

// dragTo updates the dragged control from the pointer position.
func (m Model) dragTo(x, y int) (tea.Model, tea.Cmd) {
	id := m.drag
	switch control.KindOf(id) {
	case control.KindKnob:
		cx, cy := m.layout.knobCenter(id)
		dx := float64(x - cx)
		// Terminal cells are about twice as tall as wide; double dy so
		// the pointer geometry is round.
		dy := float64(y-cy) * 2
		if dx != 0 || dy != 0 {
			angle := control.PointerToAngle(dx, dy)
			m.store.UpdateInteraction(id, control.AngleToValue(angle))
		}
	case control.KindSlider:
		top, bottom := m.layout.sliderTrack(id)
		if v, ok := control.PositionToValue(float64(y), float64(top), float64(bottom)); ok {
			m.store.UpdateInteraction(id, v)
		}
	}
	return m, m.scheduleDisplay()
}

// dialIndexAt maps a click column on the dial strip back to the nearest
// project index.
func (m Model) dialIndexAt(x int) int {
	total := m.catalog.Len()
	step := nav.DialStep(total)
	if step == 0 || m.layout.dial.w < 2 {
		return 0
	}
	angle := float64(x-m.layout.dial.x)/float64(m.layout.dial.w-1)*180 - 90
	idx := int(math.Round((90 + m.rotation - angle) / step))
	if idx < 0 {
		idx = 0
	}
	if idx >= total {
		idx = total - 1
	}
	return idx
}
