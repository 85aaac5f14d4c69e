package main

import (
	"os"

	"contact-scout/cmd/scout/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
