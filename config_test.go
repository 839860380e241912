package bunnymesh

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, FacesFile, cfg.Faces)
	assert.Equal(t, VerticesFile, cfg.Vertices)
	assert.Equal(t, FaceNormalsFile, cfg.FaceNormals)
	assert.Equal(t, VertexNormalsFile, cfg.VertexNormals)
	assert.Equal(t, "ccw", cfg.Winding)
	assert.Empty(t, cfg.PLY)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file    string
		content string
	}{
		{
			file: "mesh.toml",
			content: `data_dir = "/srv/bunny"
winding = "cw"
ply = "bunny.ply"
`,
		},
		{
			file: "mesh.yaml",
			content: `data_dir: /srv/bunny
winding: cw
ply: bunny.ply
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, []byte(tc.content))

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, "/srv/bunny", cfg.DataDir)
			assert.Equal(t, "cw", cfg.Winding)
			assert.Equal(t, "bunny.ply", cfg.PLY)
			// unset keys keep their defaults
			assert.Equal(t, FacesFile, cfg.Faces)
			assert.Equal(t, VertexNormalsFile, cfg.VertexNormals)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "could not read config file")

	_, err = LoadConfig(writeFile(t, dir, "mesh.ini", []byte("data_dir=x")))
	assert.ErrorContains(t, err, "unknown format")

	_, err = LoadConfig(writeFile(t, dir, "broken.toml", []byte("data_dir = [")))
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestConfigPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/srv/bunny"

	p, err := cfg.Path(FacesFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/bunny", FacesFile), p)

	p, err = cfg.Path("/tmp/elsewhere.npy")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.npy", p)

	home, err := homedir.Dir()
	require.NoError(t, err)
	cfg.DataDir = "~/bunny"
	p, err = cfg.Path(VerticesFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bunny", VerticesFile), p)

	files, err := cfg.MeshFiles()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bunny", FacesFile), files.Faces)
}
