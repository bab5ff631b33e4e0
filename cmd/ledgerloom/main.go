package main

import (
	"os"

	"github.com/ledgerloom-dev/ledgerloom/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
