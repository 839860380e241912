package bunnymesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sbinet/npyio"
)

var (
	ErrUnsupported = errors.New("unsupported npy data type")
	ErrTruncated   = errors.New("npy data shorter than its header claims")
)

// LoadArray reads a single NPY file. The array is named after the file,
// without its extension.
func LoadArray(fileName string) (*Array, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open NPY file %s: %w", fileName, err)
	}
	defer file.Close()

	arr, err := ReadArray(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing NPY file %s: %w", fileName, err)
	}
	arr.Name = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return arr, nil
}

// ReadArray decodes an NPY stream. Any integer, unsigned, float or bool
// element type is accepted and widened to float64; Fortran ordered data is
// rearranged into row-major order.
func ReadArray(r io.Reader) (*Array, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(raw)
	nr, err := npyio.NewReader(br)
	if err != nil {
		return nil, err
	}

	descr := nr.Header.Descr
	shape := append([]int(nil), descr.Shape...)
	size, err := itemSize(descr.Type)
	if err != nil {
		return nil, err
	}
	if !fitsPayload(shape, size, br.Len()) {
		return nil, fmt.Errorf("%w: shape %s of %s with %d bytes left", ErrTruncated, FormatShape(shape), descr.Type, br.Len())
	}

	n := shapeLen(shape)
	data := []float64{}
	if n > 0 {
		data, err = readValues(nr, descr.Type, n)
		if err != nil {
			return nil, err
		}
	}
	if descr.Fortran && len(shape) > 1 {
		data = fromFortran(data, shape)
	}

	return &Array{
		DType: descr.Type,
		Shape: shape,
		Data:  data,
	}, nil
}

// itemSize returns the byte width encoded in a descr such as "<i4".
func itemSize(dtype string) (int, error) {
	if len(dtype) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, dtype)
	}
	size, err := strconv.Atoi(dtype[2:])
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, dtype)
	}
	return size, nil
}

// fitsPayload reports whether shape elements of the given size fit in the
// remaining bytes. The product is never formed past that limit, so huge
// dimensions cannot overflow.
func fitsPayload(shape []int, size, remaining int) bool {
	limit := remaining / size
	n := 1
	for _, d := range shape {
		if d < 0 {
			return false
		}
		if d == 0 {
			return true
		}
		if n > limit/d {
			return false
		}
		n *= d
	}
	return n <= limit
}

// readValues reads n elements of the given NumPy descr. The byte order
// character is left to npyio.
func readValues(nr *npyio.Reader, dtype string, n int) ([]float64, error) {
	switch dtype[1:] {
	case "f8":
		vals := make([]float64, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return vals, nil
	case "f4":
		vals := make([]float32, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "i8":
		vals := make([]int64, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "i4":
		vals := make([]int32, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "i2":
		vals := make([]int16, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "i1":
		vals := make([]int8, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "u8":
		vals := make([]uint64, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "u4":
		vals := make([]uint32, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "u2":
		vals := make([]uint16, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "u1":
		vals := make([]uint8, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		return widen(vals), nil
	case "b1":
		vals := make([]bool, n)
		if err := nr.Read(&vals); err != nil {
			return nil, err
		}
		out := make([]float64, n)
		for i, v := range vals {
			if v {
				out[i] = 1
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, dtype)
}

type number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32
}

func widen[T number](vals []T) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}

// fromFortran reorders column-major data of the given shape into
// row-major order.
func fromFortran(data []float64, shape []int) []float64 {
	out := make([]float64, len(data))
	idx := make([]int, len(shape))
	for k := range out {
		// idx is the row-major multi-index of k
		rem := k
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d] = rem % shape[d]
			rem /= shape[d]
		}
		off, stride := 0, 1
		for d := 0; d < len(shape); d++ {
			off += idx[d] * stride
			stride *= shape[d]
		}
		out[k] = data[off]
	}
	return out
}

// SaveArray writes the array as little-endian float64 data. Arrays of rank
// three or more are written in their matrix view (see Array.Dense).
func SaveArray(fileName string, a *Array) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create NPY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WriteArray(file, a); err != nil {
		return fmt.Errorf("error writing NPY file %s: %w", fileName, err)
	}
	return file.Close()
}

func WriteArray(w io.Writer, a *Array) error {
	switch {
	case a.Len() == 0:
		return writeEmpty(w, a.Shape)
	case len(a.Shape) == 0:
		return npyio.Write(w, a.Data[0])
	case len(a.Shape) == 1:
		return npyio.Write(w, a.Data)
	}
	return npyio.Write(w, a.Dense())
}

// writeEmpty writes a version 1.0 header for a float64 array without
// elements. gonum matrices cannot have a zero dimension, so npyio cannot
// carry shapes such as (0, 3).
func writeEmpty(w io.Writer, shape []int) error {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = strconv.Itoa(d)
	}
	tuple := strings.Join(dims, ", ")
	if len(shape) == 1 {
		tuple += ","
	}
	header := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': (%s), }", tuple)
	// magic, version and length take 10 bytes; the total is padded to 64
	pad := (64 - (10+len(header)+1)%64) % 64
	header += strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	_, err := w.Write(buf.Bytes())
	return err
}
