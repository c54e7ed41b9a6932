package main

import (
	"os"

	"xkcdget/cmd/xkcdget/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
