package bunnymesh

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrIndexRange = errors.New("vertex index out of range")

// TriangleMesh is a face-vertex mesh: a list of points plus a list of
// index triples into it. Normals are filled in by ComputeNormals.
type TriangleMesh struct {
	vertices      []mgl64.Vec3
	faces         []Face
	faceNormals   []mgl64.Vec3
	vertexNormals []mgl64.Vec3
	winding       Winding
}

type Option func(*TriangleMesh)

// WithWinding sets the vertex order of front faces. The default is
// counter-clockwise.
func WithWinding(w Winding) Option {
	return func(m *TriangleMesh) {
		m.winding = w
	}
}

// NewTriangleMesh builds a mesh from a (V, 3) vertex array and a (F, 3)
// face index array.
func NewTriangleMesh(vertices, faces *Array, opts ...Option) (*TriangleMesh, error) {
	if vertices.NumDims() != 2 || vertices.Cols() != 3 {
		return nil, fmt.Errorf("%w: vertices are %s, want (V, 3)", ErrBadShape, FormatShape(vertices.Shape))
	}
	if faces.NumDims() != 2 || faces.Cols() != 3 {
		return nil, fmt.Errorf("%w: faces are %s, want (F, 3)", ErrBadShape, FormatShape(faces.Shape))
	}

	m := &TriangleMesh{
		vertices: make([]mgl64.Vec3, vertices.Rows()),
		faces:    make([]Face, faces.Rows()),
	}
	for _, opt := range opts {
		opt(m)
	}

	for i := range m.vertices {
		row := vertices.Row(i)
		m.vertices[i] = mgl64.Vec3{row[0], row[1], row[2]}
	}

	numVertices := len(m.vertices)
	for i := range m.faces {
		row := faces.Row(i)
		for j, v := range row {
			idx := int(v)
			if float64(idx) != v || idx < 0 || idx >= numVertices {
				return nil, fmt.Errorf("%w: face %d has index %v, mesh has %d vertices", ErrIndexRange, i, v, numVertices)
			}
			m.faces[i][j] = idx
		}
	}
	return m, nil
}

func (m *TriangleMesh) NumFaces() int {
	return len(m.faces)
}

func (m *TriangleMesh) NumVertices() int {
	return len(m.vertices)
}

func (m *TriangleMesh) Faces() []Face {
	return m.faces
}

func (m *TriangleMesh) Vertices() []mgl64.Vec3 {
	return m.vertices
}

// ComputeNormals fills in the unit face and vertex normals.
//
// A face normal is the normalized cross product of two of its sides,
// (v1-v0) x (v2-v1). A vertex normal is the normalized sum of the
// unnormalized normals of every face using that vertex, so large faces
// weigh more than small ones. Degenerate faces get a zero normal, and
// vertices that belong to no face get NaN.
func (m *TriangleMesh) ComputeNormals() {
	m.faceNormals = make([]mgl64.Vec3, len(m.faces))
	m.vertexNormals = make([]mgl64.Vec3, len(m.vertices))
	used := make([]bool, len(m.vertices))

	for i, f := range m.faces {
		n := crossNormal(m.vertices[f[0]], m.vertices[f[1]], m.vertices[f[2]], m.winding)
		for _, vi := range f {
			m.vertexNormals[vi] = m.vertexNormals[vi].Add(n)
			used[vi] = true
		}
		m.faceNormals[i] = normalize(n)
	}

	isolated := 0
	for i, n := range m.vertexNormals {
		l := n.Len()
		if !used[i] || l == 0 {
			m.vertexNormals[i] = mgl64.Vec3{math.NaN(), math.NaN(), math.NaN()}
			isolated++
			continue
		}
		m.vertexNormals[i] = n.Mul(1 / l)
	}

	slog.Debug("computed normals", "faces", len(m.faces), "vertices", len(m.vertices), "without_normal", isolated)
}

// FaceNormals returns the (F, 3) face normal array. ComputeNormals must
// have been called.
func (m *TriangleMesh) FaceNormals() *Array {
	return ArrayFromVectors("face_normals", m.faceNormals)
}

// VertexNormals returns the (V, 3) vertex normal array. ComputeNormals
// must have been called.
func (m *TriangleMesh) VertexNormals() *Array {
	return ArrayFromVectors("vertex_normals", m.vertexNormals)
}

// Box is an axis aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Bounds returns the bounding box of all vertices.
func (m *TriangleMesh) Bounds() Box {
	if len(m.vertices) == 0 {
		return Box{}
	}
	box := Box{Min: m.vertices[0], Max: m.vertices[0]}
	for _, v := range m.vertices[1:] {
		for k := 0; k < 3; k++ {
			box.Min[k] = math.Min(box.Min[k], v[k])
			box.Max[k] = math.Max(box.Max[k], v[k])
		}
	}
	return box
}
