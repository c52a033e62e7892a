package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielguerrarmz/deckfolio/internal/board"
	"github.com/danielguerrarmz/deckfolio/internal/config"
	"github.com/danielguerrarmz/deckfolio/internal/control"
	"github.com/danielguerrarmz/deckfolio/internal/display"
	"github.com/danielguerrarmz/deckfolio/internal/event"
	"github.com/danielguerrarmz/deckfolio/internal/layout"
	"github.com/danielguerrarmz/deckfolio/internal/logging"
	"github.com/danielguerrarmz/deckfolio/internal/nav"
	"github.com/danielguerrarmz/deckfolio/internal/project"
	"github.com/danielguerrarmz/deckfolio/internal/tui/keymap"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
	"github.com/danielguerrarmz/deckfolio/internal/tui/view"
	"github.com/danielguerrarmz/deckfolio/internal/util"
)

// Model is the Bubbletea model for the control board.
type Model struct {
	cfg    *config.Config
	st     styles.Styles
	keys   keymap.KeyMap
	help   help.Model
	logger *logging.Logger

	bus       *event.Bus
	store     *board.Store
	selector  *nav.Selector
	formatter *display.Formatter
	catalog   *project.Catalog
	content   *view.Content

	layout boardLayout
	ready  bool

	focus int        // index into control.IDs
	drag  control.ID // control owning the live drag session, "" when none

	spring      harmonica.Spring
	rotation    float64
	rotationVel float64
	animating   bool

	status   string
	statusID int

	showHelp bool
}

// NewModel builds the board model around a loaded catalog.
func NewModel(cfg *config.Config, catalog *project.Catalog, logger *logging.Logger) Model {
	st := styles.New(styles.ByName(cfg.UI.Theme))

	bus := event.NewBus()
	store := board.NewStore(bus)
	formatter := display.NewFormatter(cfg.Display.IdleTimeout(), cfg.Display.CycleInterval(), time.Now())

	// The readout learns about interactions the same way any other
	// subscriber would, never by direct calls from widget code.
	bus.Subscribe(event.EventTypeControl, func(e event.Event) {
		if ce, ok := e.(event.ControlEvent); ok {
			formatter.HandleEvent(ce)
		}
	})

	eventLog := logger.WithComponent("events")
	bus.SubscribeAll(func(e event.Event) {
		eventLog.Debug("event", "type", e.EventType())
	})

	selector := nav.NewSelector(catalog.Len())

	m := Model{
		cfg:       cfg,
		st:        st,
		keys:      keymap.Default(),
		help:      help.New(),
		logger:    logger.WithComponent("tui"),
		bus:       bus,
		store:     store,
		selector:  selector,
		formatter: formatter,
		catalog:   catalog,
		content:   view.NewContent(st, 40),
		spring:    harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.8),
	}
	m.rotation = nav.DialRotation(catalog.Len(), 0)
	return m
}

// Init schedules the first readout deadline.
func (m Model) Init() tea.Cmd {
	return m.scheduleDisplay()
}

// scheduleDisplay arms a tick for the formatter's next deadline.
func (m Model) scheduleDisplay() tea.Cmd {
	deadline, ok := m.formatter.NextDeadline()
	if !ok {
		return nil
	}
	return displayTickCmd(deadline, m.formatter.Generation())
}

// displaySnapshot assembles the derived values the readout shows when no
// control is active.
func (m Model) displaySnapshot() display.Snapshot {
	state := m.store.Snapshot()
	widths := layout.Columns(
		state.ArchitectureEmphasis,
		state.ProductDesignEmphasis,
		state.SoftwareEmphasis,
	)

	title := ""
	if proj, ok := m.catalog.At(m.selector.Index()); ok {
		title = proj.Title
	}

	return display.Snapshot{
		ProjectCode:  project.ShortCode(m.selector.Index()),
		ProjectTitle: title,
		Architecture: widths.Architecture,
		Product:      widths.ProductDesign,
		Software:     widths.Software,
	}
}

// activeProject returns the project under the dial needle.
func (m Model) activeProject() project.Project {
	proj, _ := m.catalog.At(m.selector.Index())
	return proj
}

// focusedControl returns the control that keyboard input addresses.
func (m Model) focusedControl() control.ID {
	return control.IDs[m.focus]
}

// timelineEnabled reports whether the timeline slider accepts input for
// the active project.
func (m Model) timelineEnabled() bool {
	return m.activeProject().HasTimeline
}

// View renders the full board.
func (m Model) View() string {
	if !m.ready {
		return "warming up the decks..."
	}
	if m.layout.width < MinTermWidth || m.layout.height < MinTermHeight {
		return m.st.Warning.Render(
			fmt.Sprintf("terminal too small: need at least %dx%d", MinTermWidth, MinTermHeight))
	}

	left := m.renderBoard()
	right := m.renderDeck()

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", BoardGutter), right)

	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, main, footer)
}

// renderBoard draws the left control column. Row offsets here must stay
// in lockstep with the layout constants.
func (m Model) renderBoard() string {
	state := m.store.Snapshot()
	focused := m.focusedControl()

	title := m.st.Title.Render("DECKFOLIO")

	lcd := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Repeat(" ", m.layout.lcd.x),
		view.RenderLCD(m.st, m.formatter.Lines(m.displaySnapshot())),
	)

	knobs := lipgloss.JoinHorizontal(lipgloss.Top,
		view.RenderKnob(m.st, "ARCH", state.ArchitectureEmphasis, focused == control.ArchitectureEmphasis),
		" ",
		view.RenderKnob(m.st, "PROD", state.ProductDesignEmphasis, focused == control.ProductDesignEmphasis),
		" ",
		view.RenderKnob(m.st, "SOFT", state.SoftwareEmphasis, focused == control.SoftwareEmphasis),
	)

	toggles := lipgloss.JoinHorizontal(lipgloss.Top,
		" ",
		view.RenderToggle(m.st, "VIEW", "HERO", "BRKDWN", state.ViewMode == board.ViewBreakdown, focused == control.ViewMode),
		strings.Repeat(" ", 5),
		view.RenderToggle(m.st, "META", "OFF", "ON", state.ShowMetadata, focused == control.ShowMetadata),
	)

	sliders := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Repeat(" ", 4),
		view.RenderSlider(m.st, "DEPTH", state.DetailDepth, focused == control.DetailDepth, true),
		strings.Repeat(" ", 6),
		view.RenderSlider(m.st, "TIME", state.TimelineProgress, focused == control.TimelineProgress, m.timelineEnabled()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lcd,
		"",
		knobs,
		"",
		toggles,
		"",
		sliders,
	)
}

// renderDeck draws the dial and content panel.
func (m Model) renderDeck() string {
	dial := view.RenderDial(m.st, m.catalog.Titles(), m.selector.Index(), m.rotation, m.layout.dial.w)

	body := m.content.Render(m.activeProject(), m.store.Snapshot())
	if m.layout.content.h > 0 {
		body = lipgloss.NewStyle().MaxHeight(m.layout.content.h).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, dial, "", body)
}

// renderFooter draws the help bar and any transient status.
func (m Model) renderFooter() string {
	m.help.ShowAll = m.showHelp
	bar := m.help.View(m.keys)
	if m.status != "" {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, m.st.Status.Render(m.status), "  ", bar)
	}
	if !m.showHelp {
		bar = util.TruncateANSI(bar, m.layout.width)
	}
	return bar
}
