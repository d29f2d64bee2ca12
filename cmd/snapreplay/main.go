package main

import (
	"os"

	"github.com/teqfw/snapwheel/cmd/snapreplay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
