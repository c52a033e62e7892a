package cmd

import (
	"fmt"
	"strings"

	"github.com/danielguerrarmz/deckfolio/internal/config"
	"github.com/danielguerrarmz/deckfolio/internal/logging"
	"github.com/danielguerrarmz/deckfolio/internal/project"
	"github.com/danielguerrarmz/deckfolio/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "deckfolio",
	Short: "A DJ-booth portfolio for the terminal",
	Long: `Deckfolio renders an interactive control board in the terminal:
knobs, sliders and toggles that mix a portfolio of projects the way a
DJ mixes a set. Turn a knob to weight a discipline, push the depth
slider to reveal more detail, and spin the project dial to switch decks.`,
	RunE: runBoard,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/deckfolio/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().StringP("projects", "p", "", "path to a projects YAML file (default is the built-in catalog)")
	rootCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("theme", "", "color theme (default, contrast)")
	rootCmd.Flags().Bool("no-mouse", false, "disable mouse input")

	_ = viper.BindPFlag("projects.path", rootCmd.Flags().Lookup("projects"))
	_ = viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("ui.theme", rootCmd.Flags().Lookup("theme"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/deckfolio")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DECKFOLIO")
	// Replace dots with underscores for nested keys in env vars
	// e.g., DECKFOLIO_UI_THEME for ui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		cfg.UI.Mouse = false
	}

	logger := logging.Discard()
	if cfg.Logging.Enabled {
		logDir := cfg.Logging.Dir
		if logDir == "" {
			// Never log to stderr while the board owns the terminal.
			logDir = config.StateDir()
		}
		logger, err = logging.NewLogger(logDir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
	}
	defer logger.Close()

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	app := tui.New(cfg, catalog, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func loadCatalog(cfg *config.Config, logger *logging.Logger) (*project.Catalog, error) {
	if cfg.Projects.Path == "" {
		return project.Default(), nil
	}

	catalog, err := project.LoadFile(cfg.Projects.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects from %s: %w", cfg.Projects.Path, err)
	}
	logger.WithComponent("catalog").Info("loaded projects", "path", cfg.Projects.Path, "count", catalog.Len())
	return catalog, nil
}
