// Command inspectmesh prints the bunny data set arrays and their shapes.
//
// It is meant to be run from the repository root or its python directory;
// either way it reads the arrays from the data directory next to python.
package main

import (
	"log/slog"
	"os"

	"github.com/smasonuk/bunnymesh"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	dir, err := bunnymesh.EnterDataDir(bunnymesh.ScriptDir, bunnymesh.DataDir)
	if err != nil {
		fatal(err)
	}

	if err := bunnymesh.Inspect(os.Stdout, dir); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
