package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags. When unset, the module
// version from build info is used instead.
var Version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deckfolio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("deckfolio", resolveVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func resolveVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
