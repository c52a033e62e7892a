package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielguerrarmz/deckfolio/internal/config"
	"github.com/danielguerrarmz/deckfolio/internal/project"
)

// displayTickMsg fires when a readout deadline elapses. The generation
// stamps the schedule that armed it; the formatter discards ticks from
// superseded schedules so a stale idle transition can never land after
// an interaction resumed.
type displayTickMsg struct {
	at  time.Time
	gen uint64
}

// animTickMsg drives the dial spring while it is settling.
type animTickMsg time.Time

// statusExpiredMsg clears a transient footer status line.
type statusExpiredMsg struct{ id int }

// catalogReloadedMsg carries a freshly loaded projects file from the
// watcher goroutine onto the UI thread.
type catalogReloadedMsg struct {
	catalog *project.Catalog
}

// catalogErrMsg reports a failed reload; the running catalog stays.
type catalogErrMsg struct {
	err error
}

// configReloadedMsg carries a re-parsed configuration from the viper
// watcher onto the UI thread.
type configReloadedMsg struct {
	cfg *config.Config
}

// configErrMsg reports a config file change that failed to load; the
// running configuration stays.
type configErrMsg struct {
	err error
}

const (
	animFrame  = time.Second / 30
	statusLife = 1500 * time.Millisecond
)

func displayTickCmd(deadline time.Time, gen uint64) tea.Cmd {
	wait := time.Until(deadline)
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return displayTickMsg{at: t, gen: gen}
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(animFrame, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func statusExpireCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}
