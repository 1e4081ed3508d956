package main

import (
	"os"

	"github.com/cadrebook/cadrebook-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
