package bunnymesh

import (
	"io"
	"path/filepath"
)

// Fixed file names of the bunny data set.
const (
	FacesFile         = "bunny_faces.npy"
	VerticesFile      = "bunny_vertices.npy"
	FaceNormalsFile   = "face_normals.npy"
	VertexNormalsFile = "vertex_normals.npy"
)

type labeledFile struct {
	label string
	name  string
}

// Arrays are loaded a pass at a time and printed only once every load of
// the pass has succeeded.
var inspectPasses = [][]labeledFile{
	{
		{"Bunny Faces", FacesFile},
		{"Bunny Vertices", VerticesFile},
	},
	{
		{"Face Normals", FaceNormalsFile},
		{"Vertex Normals", VertexNormalsFile},
	},
}

// Inspect loads the four data set arrays from dir and prints each one with
// its shape. The first load error aborts the run; nothing is printed for
// the failing array or anything after it. Array sizes are not checked
// against each other.
func Inspect(w io.Writer, dir string) error {
	rep := NewReporter(w)
	for _, pass := range inspectPasses {
		arrays := make([]*Array, len(pass))
		for i, f := range pass {
			a, err := LoadArray(filepath.Join(dir, f.name))
			if err != nil {
				return err
			}
			arrays[i] = a
		}
		for i, f := range pass {
			if err := rep.Report(f.label, arrays[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// MeshFiles names the input arrays of a mesh.
type MeshFiles struct {
	Faces    string
	Vertices string
}

// LoadMesh reads the face and vertex arrays and builds a mesh from them.
func LoadMesh(files MeshFiles, opts ...Option) (*TriangleMesh, error) {
	faces, err := LoadArray(files.Faces)
	if err != nil {
		return nil, err
	}
	vertices, err := LoadArray(files.Vertices)
	if err != nil {
		return nil, err
	}
	return NewTriangleMesh(vertices, faces, opts...)
}
