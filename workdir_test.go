package bunnymesh

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the process working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

// captureLog sends the default logger to a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() {
		slog.SetDefault(prev)
	})
	return &buf
}

// tempRoot returns a temp directory with symlinks resolved, so it can be
// compared with os.Getwd.
func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func TestEnterDataDirFromRepositoryRoot(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, ScriptDir), 0o755))
	writeDataset(t, filepath.Join(root, "data"))
	chdir(t, root)
	logs := captureLog(t)

	dir, err := EnterDataDir(ScriptDir, DataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data"), dir)
	assert.Contains(t, logs.String(), "level=INFO")
	assert.Contains(t, logs.String(), filepath.Join(root, ScriptDir))

	var buf bytes.Buffer
	require.NoError(t, Inspect(&buf, dir))
	assert.Contains(t, buf.String(), "Vertex Normals :")
}

func TestEnterDataDirFromScriptDirectory(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, ScriptDir), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "data"), 0o755))
	chdir(t, filepath.Join(root, ScriptDir))

	// python/python does not exist; the failure is ignored.
	dir, err := EnterDataDir(ScriptDir, DataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data"), dir)
}

func TestEnterDataDirIgnoresMissingChild(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "work"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "data"), 0o755))
	chdir(t, filepath.Join(root, "work"))
	logs := captureLog(t)

	dir, err := EnterDataDir(ScriptDir, DataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data"), dir)
	assert.NotContains(t, logs.String(), "entered script directory")
}

func TestEnterDataDirIgnoresChildFile(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "work"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "data"), 0o755))
	writeFile(t, filepath.Join(root, "work"), ScriptDir, []byte("not a directory"))
	chdir(t, filepath.Join(root, "work"))

	dir, err := EnterDataDir(ScriptDir, DataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data"), dir)
}

func TestEnterDataDirFailsWithoutData(t *testing.T) {
	root := tempRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "work"), 0o755))
	chdir(t, filepath.Join(root, "work"))

	_, err := EnterDataDir(ScriptDir, DataDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "work"), cwd)
}
