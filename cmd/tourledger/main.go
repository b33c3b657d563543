package main

import (
	"os"

	"github.com/tourledger-dev/tourledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
