package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/danieljhkim/stagereslot/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	err := cli.Execute()
	if err != nil {
		cli.ReportError(os.Stderr, err)
	}

	// pause after success as well as failure
	cli.Pause(os.Stdin, os.Stderr, isInteractive())

	if err != nil {
		os.Exit(1)
	}
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
