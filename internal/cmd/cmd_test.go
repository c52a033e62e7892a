package cmd

import (
	"strings"
	"testing"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.Use != "deckfolio" {
		t.Errorf("rootCmd.Use = %q, want deckfolio", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("rootCmd.Short should not be empty")
	}
	if rootCmd.RunE == nil {
		t.Error("root command should run the board directly")
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"projects", "log-level", "theme", "no-mouse"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("missing persistent flag --config")
	}
}

func TestVersionSubcommandRegistered(t *testing.T) {
	found := false
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "version" {
			found = true
		}
	}
	if !found {
		t.Error("version subcommand not registered")
	}
}

func TestResolveVersion(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "1.2.3"
	if got := resolveVersion(); got != "1.2.3" {
		t.Errorf("resolveVersion() = %q, want 1.2.3", got)
	}

	Version = ""
	if got := resolveVersion(); got == "" {
		t.Error("resolveVersion() should fall back to build info or (devel)")
	}
}

func TestLongDescriptionMentionsControls(t *testing.T) {
	long := strings.ToLower(rootCmd.Long)
	for _, word := range []string{"knob", "slider", "dial"} {
		if !strings.Contains(long, word) {
			t.Errorf("long description should mention %q", word)
		}
	}
}
