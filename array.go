package bunnymesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

var ErrBadShape = errors.New("bad array shape")

// Array is a numeric array loaded from, or destined for, an NPY file.
// Values are stored row-major and widened to float64 whatever the
// on-disk element type was.
type Array struct {
	Name  string
	DType string
	Shape []int
	Data  []float64
}

// NewArray wraps data with the given shape. The data slice is not copied.
func NewArray(name string, data []float64, shape ...int) (*Array, error) {
	if n := shapeLen(shape); n != len(data) {
		return nil, fmt.Errorf("%w: shape %s needs %d values, got %d", ErrBadShape, FormatShape(shape), n, len(data))
	}
	return &Array{
		Name:  name,
		DType: "<f8",
		Shape: append([]int(nil), shape...),
		Data:  data,
	}, nil
}

// ArrayFromVectors builds an (N, 3) array from a list of vectors.
func ArrayFromVectors(name string, vecs []mgl64.Vec3) *Array {
	data := make([]float64, 0, len(vecs)*3)
	for _, v := range vecs {
		data = append(data, v[0], v[1], v[2])
	}
	return &Array{Name: name, DType: "<f8", Shape: []int{len(vecs), 3}, Data: data}
}

func (a *Array) NumDims() int {
	return len(a.Shape)
}

func (a *Array) Len() int {
	return len(a.Data)
}

// Rows is the size of the outermost dimension once the array is viewed as
// a matrix. See Dense.
func (a *Array) Rows() int {
	r, _ := a.dims()
	return r
}

// Cols is the size of the innermost dimension once the array is viewed as
// a matrix.
func (a *Array) Cols() int {
	_, c := a.dims()
	return c
}

func (a *Array) At(i, j int) float64 {
	_, c := a.dims()
	return a.Data[i*c+j]
}

// Row returns a view onto row i.
func (a *Array) Row(i int) []float64 {
	_, c := a.dims()
	return a.Data[i*c : (i+1)*c]
}

// Dense returns a gonum matrix sharing the array's values. 0-d arrays are
// viewed as 1x1, 1-d arrays as a single row, and higher ranks fold every
// leading dimension into rows.
func (a *Array) Dense() *mat.Dense {
	r, c := a.dims()
	if r == 0 || c == 0 {
		return nil
	}
	return mat.NewDense(r, c, a.Data)
}

func (a *Array) dims() (rows, cols int) {
	switch len(a.Shape) {
	case 0:
		return 1, 1
	case 1:
		return 1, a.Shape[0]
	}
	last := a.Shape[len(a.Shape)-1]
	return shapeLen(a.Shape[:len(a.Shape)-1]), last
}

// SameShape reports whether both arrays have identical dimensions.
func (a *Array) SameShape(b *Array) bool {
	if len(a.Shape) != len(b.Shape) {
		return false
	}
	for i := range a.Shape {
		if a.Shape[i] != b.Shape[i] {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	return fmt.Sprintf("%s%s %s", a.Name, FormatShape(a.Shape), a.DType)
}

// FormatShape renders dimensions the way Python prints a tuple.
func FormatShape(shape []int) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("(%d,)", shape[0])
	}
	var sb strings.Builder
	sb.WriteString("(")
	for i, d := range shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteString(")")
	return sb.String()
}

func shapeLen(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
