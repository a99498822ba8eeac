package main

import (
	"os"

	"github.com/tinne26/bgrid/cmd/bgrid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
