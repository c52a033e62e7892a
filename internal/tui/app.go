// Package tui runs the control board: a Bubbletea program wiring the
// board state, readout formatter and project catalog to the terminal.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/danielguerrarmz/deckfolio/internal/config"
	"github.com/danielguerrarmz/deckfolio/internal/logging"
	"github.com/danielguerrarmz/deckfolio/internal/project"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	cfg     *config.Config
	logger  *logging.Logger
}

// New creates the board application.
func New(cfg *config.Config, catalog *project.Catalog, logger *logging.Logger) *App {
	return &App{
		model:  NewModel(cfg, catalog, logger),
		cfg:    cfg,
		logger: logger,
	}
}

// Run starts the program and blocks until it exits.
func (a *App) Run() error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.cfg.UI.Mouse {
		// All-motion reporting so knob drags keep tracking between cells.
		opts = append(opts, tea.WithMouseAllMotion())
	}

	a.program = tea.NewProgram(a.model, opts...)

	// Graceful shutdown on terminal signals.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()
	defer signal.Stop(sigChan)

	watcher, err := a.startWatcher()
	if err != nil {
		a.logger.Warn("projects watcher unavailable", "error", err)
	}
	if watcher != nil {
		defer watcher.Close()
	}
	a.watchConfig()

	_, err = a.program.Run()
	return err
}

// watchConfig hot-reloads theme and display timings when the config file
// changes on disk. Without a config file there is nothing to watch.
func (a *App) watchConfig() {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(fsnotify.Event) {
		cfg, err := config.Load()
		if err != nil {
			a.program.Send(configErrMsg{err: err})
			return
		}
		a.program.Send(configReloadedMsg{cfg: cfg})
	})
	viper.WatchConfig()
}

// startWatcher begins live-reloading the projects file, if one is
// configured and watching is enabled.
func (a *App) startWatcher() (*project.Watcher, error) {
	if !a.cfg.Projects.Watch || a.cfg.Projects.Path == "" {
		return nil, nil
	}
	return project.Watch(a.cfg.Projects.Path,
		func(catalog *project.Catalog) {
			a.program.Send(catalogReloadedMsg{catalog: catalog})
		},
		func(err error) {
			a.program.Send(catalogErrMsg{err: err})
		},
	)
}
