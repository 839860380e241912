package bunnymesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// SavePLY writes the mesh, with vertex normals when they have been
// computed, as an ASCII PLY file.
func (m *TriangleMesh) SavePLY(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := m.WritePLY(file); err != nil {
		return fmt.Errorf("error writing PLY file %s: %w", fileName, err)
	}
	return file.Close()
}

func (m *TriangleMesh) WritePLY(w io.Writer) error {
	writer := bufio.NewWriter(w)
	withNormals := len(m.vertexNormals) == len(m.vertices)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by bunnymesh")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(m.vertices))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	if withNormals {
		_, _ = fmt.Fprintln(writer, "property float nx")
		_, _ = fmt.Fprintln(writer, "property float ny")
		_, _ = fmt.Fprintln(writer, "property float nz")
	}
	_, _ = fmt.Fprintf(writer, "element face %d\n", len(m.faces))
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for i, v := range m.vertices {
		_, _ = fmt.Fprintf(writer, "%f %f %f", v[0], v[1], v[2])
		if withNormals {
			n := m.vertexNormals[i]
			_, _ = fmt.Fprintf(writer, " %f %f %f", n[0], n[1], n[2])
		}
		_, _ = fmt.Fprintln(writer)
	}

	for _, f := range m.faces {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", f[0], f[1], f[2])
	}

	return writer.Flush()
}
