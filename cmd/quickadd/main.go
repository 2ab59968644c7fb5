package main

import (
	"os"

	"task-quickadd/internal/cli"
)

func main() {
	// Cobra prints the error itself; the exit code is ours.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
