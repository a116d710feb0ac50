package main

import (
	"os"

	"github.com/fatture-dev/fatture/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
