package main

import (
	"os"

	"cafepos/cmd/cafe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
