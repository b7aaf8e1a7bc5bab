package main

import (
	"os"

	"github.com/capitex-dev/capitex/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
