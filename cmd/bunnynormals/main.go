// Command bunnynormals computes the face and vertex normals of the bunny
// mesh and saves them next to the input arrays.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/smasonuk/bunnymesh"
)

// options are the command line settings layered over the config file.
type options struct {
	configFile string
	dataDir    string
	plyFile    string
	winding    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "TOML or YAML config file")
	flag.StringVar(&opts.dataDir, "data", "", "directory holding the npy arrays (overrides config)")
	flag.StringVar(&opts.plyFile, "ply", "", "also export the mesh with vertex normals as PLY")
	flag.StringVar(&opts.winding, "winding", "", `front face vertex order, "ccw" or "cw" (overrides config)`)
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(opts)
	if err != nil {
		fatal(err)
	}
	if err := run(cfg); err != nil {
		fatal(err)
	}
}

// loadConfig starts from the defaults, applies the config file if one is
// given and then any non-empty flag.
func loadConfig(opts options) (bunnymesh.Config, error) {
	cfg := bunnymesh.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = bunnymesh.LoadConfig(opts.configFile); err != nil {
			return cfg, err
		}
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}
	if opts.plyFile != "" {
		cfg.PLY = opts.plyFile
	}
	if opts.winding != "" {
		cfg.Winding = opts.winding
	}
	return cfg, nil
}

func run(cfg bunnymesh.Config) error {
	winding, err := bunnymesh.ParseWinding(cfg.Winding)
	if err != nil {
		return err
	}
	files, err := cfg.MeshFiles()
	if err != nil {
		return err
	}

	mesh, err := bunnymesh.LoadMesh(files, bunnymesh.WithWinding(winding))
	if err != nil {
		return err
	}
	box := mesh.Bounds()
	slog.Info("loaded mesh", "faces", mesh.NumFaces(), "vertices", mesh.NumVertices())
	slog.Debug("mesh bounds", "min", box.Min, "max", box.Max, "center", box.Center())

	mesh.ComputeNormals()

	outputs := []struct {
		name string
		arr  *bunnymesh.Array
	}{
		{cfg.FaceNormals, mesh.FaceNormals()},
		{cfg.VertexNormals, mesh.VertexNormals()},
	}
	for _, out := range outputs {
		path, err := cfg.Path(out.name)
		if err != nil {
			return err
		}
		if err := bunnymesh.SaveArray(path, out.arr); err != nil {
			return err
		}
		slog.Info("saved normals", "file", path, "shape", bunnymesh.FormatShape(out.arr.Shape))
	}

	if cfg.PLY != "" {
		if err := mesh.SavePLY(cfg.PLY); err != nil {
			return fmt.Errorf("exporting mesh: %w", err)
		}
		slog.Info("exported mesh", "file", cfg.PLY)
	}
	return nil
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
