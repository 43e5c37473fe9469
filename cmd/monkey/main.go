package main

import (
	"os"

	"github.com/metaphox/monkey-lang/cmd/monkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
