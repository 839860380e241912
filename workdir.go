package bunnymesh

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Directories used to find the data folder from either the repository
// root or its python folder.
const (
	ScriptDir = "python"
	DataDir   = "../data"
)

// EnterDataDir changes into child if it exists below the current directory,
// silently staying put otherwise, and then changes into sibling relative to
// wherever that left us. Only the second change can fail. The resulting
// working directory is returned.
func EnterDataDir(child, sibling string) (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		dir := filepath.Join(cwd, child)
		if info, err := os.Stat(dir); err == nil && info.IsDir() && os.Chdir(dir) == nil {
			slog.Info("entered script directory", "dir", dir)
		}
	}

	if err := os.Chdir(sibling); err != nil {
		return "", fmt.Errorf("could not enter data directory %s: %w", sibling, err)
	}
	return os.Getwd()
}
