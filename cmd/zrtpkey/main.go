package main

import (
	"os"

	"zrtpkey/cmd/zrtpkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
