package main

import (
	"os"

	"egress/cmd/egress/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
