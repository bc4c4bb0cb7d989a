package main

import (
	"os"

	"github.com/NXConner/fleet-asphalt-nexus-sub002/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
