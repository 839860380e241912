package bunnymesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config describes where the normals tool finds its input and writes its
// output. File names are relative to DataDir unless absolute.
type Config struct {
	DataDir       string `toml:"data_dir" yaml:"data_dir"`
	Faces         string `toml:"faces" yaml:"faces"`
	Vertices      string `toml:"vertices" yaml:"vertices"`
	FaceNormals   string `toml:"face_normals" yaml:"face_normals"`
	VertexNormals string `toml:"vertex_normals" yaml:"vertex_normals"`
	Winding       string `toml:"winding" yaml:"winding"`

	// PLY, when set, also exports the mesh with its vertex normals.
	PLY string `toml:"ply" yaml:"ply"`
}

func DefaultConfig() Config {
	return Config{
		DataDir:       "data",
		Faces:         FacesFile,
		Vertices:      VerticesFile,
		FaceNormals:   FaceNormalsFile,
		VertexNormals: VertexNormalsFile,
		Winding:       CounterClockwise.String(),
	}
}

// LoadConfig reads a TOML or YAML file, chosen by extension, over the
// defaults.
func LoadConfig(fileName string) (Config, error) {
	cfg := DefaultConfig()

	path, err := homedir.Expand(fileName)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %s: %w", fileName, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config file %s: unknown format %q", fileName, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("error parsing config file %s: %w", fileName, err)
	}
	return cfg, nil
}

// Path resolves a file name against DataDir, expanding a leading ~.
func (c Config) Path(name string) (string, error) {
	name, err := homedir.Expand(name)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := homedir.Expand(c.DataDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// MeshFiles resolves the face and vertex array paths.
func (c Config) MeshFiles() (MeshFiles, error) {
	faces, err := c.Path(c.Faces)
	if err != nil {
		return MeshFiles{}, err
	}
	vertices, err := c.Path(c.Vertices)
	if err != nil {
		return MeshFiles{}, err
	}
	return MeshFiles{Faces: faces, Vertices: vertices}, nil
}
