package main

import (
	"os"

	"github.com/signalwire/signalwire-agents-sdk-claude-skill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
