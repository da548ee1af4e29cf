package main

import (
	"os"

	"github.com/learngrid/learngrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
