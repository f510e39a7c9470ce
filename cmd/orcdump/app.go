package main

import (
	"errors"

	"github.com/urfave/cli/v2"
)

// ErrOrcdump is the base error wrapped by every command-level failure.
var ErrOrcdump = errors.New("orcdump")

func newOrcdumpApp() *cli.App {
	return &cli.App{
		Name:  "orcdump",
		Usage: "inspect ORC files",
		Commands: []*cli.Command{
			newStripesCommand(),
			newDumpCommand(),
		},
	}
}
