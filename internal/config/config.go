// Package config holds deckfolio's viper-backed configuration: board timing,
// input behavior, theme selection, and where the projects file lives.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/danielguerrarmz/deckfolio/internal/errors"
)

// Config represents the complete deckfolio configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Display  DisplayConfig  `mapstructure:"display"`
	Projects ProjectsConfig `mapstructure:"projects"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// UIConfig controls input behavior and appearance.
type UIConfig struct {
	// Theme is the color theme: "default" or "contrast".
	Theme string `mapstructure:"theme"`
	// Mouse enables pointer support (drags, wheel, clicks).
	Mouse bool `mapstructure:"mouse"`
	// WheelStep is the value change per wheel tick over a knob.
	WheelStep float64 `mapstructure:"wheel_step"`
}

// DisplayConfig controls the LCD readout timers.
type DisplayConfig struct {
	// IdleTimeoutMs is how long after the last interaction the readout
	// switches to the idle cycle.
	IdleTimeoutMs int `mapstructure:"idle_timeout_ms"`
	// CycleIntervalMs is the dwell time per discipline in the idle cycle.
	CycleIntervalMs int `mapstructure:"cycle_interval_ms"`
}

// IdleTimeout returns the idle timeout as a time.Duration.
func (c *DisplayConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMs) * time.Millisecond
}

// CycleInterval returns the cycle interval as a time.Duration.
func (c *DisplayConfig) CycleInterval() time.Duration {
	return time.Duration(c.CycleIntervalMs) * time.Millisecond
}

// ProjectsConfig controls where the portfolio dataset comes from.
type ProjectsConfig struct {
	// Path points at a projects YAML file. Empty uses the embedded catalog.
	Path string `mapstructure:"path"`
	// Watch reloads the projects file when it changes on disk.
	Watch bool `mapstructure:"watch"`
}

// LoggingConfig controls debug logging behavior.
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled.
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Dir overrides the log directory. Empty uses the state dir.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:     "default",
			Mouse:     true,
			WheelStep: 2,
		},
		Display: DisplayConfig{
			IdleTimeoutMs:   2000,
			CycleIntervalMs: 2000,
		},
		Projects: ProjectsConfig{
			Path:  "", // Embedded catalog
			Watch: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.mouse", defaults.UI.Mouse)
	viper.SetDefault("ui.wheel_step", defaults.UI.WheelStep)

	viper.SetDefault("display.idle_timeout_ms", defaults.Display.IdleTimeoutMs)
	viper.SetDefault("display.cycle_interval_ms", defaults.Display.CycleIntervalMs)

	viper.SetDefault("projects.path", defaults.Projects.Path)
	viper.SetDefault("projects.watch", defaults.Projects.Watch)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load builds a Config from viper's current state and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("parse", err).WithPath(viper.ConfigFileUsed())
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.NewConfigError("invalid configuration", ValidationErrors(errs)).
			WithPath(viper.ConfigFileUsed())
	}
	return &cfg, nil
}

// ConfigDir returns the directory deckfolio reads its config file from.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "deckfolio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "deckfolio")
}

// StateDir returns the directory used for logs.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "deckfolio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "deckfolio")
}
