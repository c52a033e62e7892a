package main

import (
	"fmt"
	"os"

	"github.com/danielguerrarmz/deckfolio/internal/cmd"
	"github.com/danielguerrarmz/deckfolio/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\nThis looks like a bug; logs may have details.\n", err)
		}
		os.Exit(1)
	}
}
