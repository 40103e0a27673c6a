package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-plasma/internal/numeric"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Channels is the length of the trailing colour axis produced by MapArray.
const Channels = 3

// Array is a dense row-major n-dimensional array of float64.
//
// An empty Shape describes a 0-d array holding a single value.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray wraps data with the given shape without copying.
// It returns an error wrapping [ErrShape] if a dimension is negative or the
// shape does not describe len(data) elements.
func NewArray(data []float64, shape ...int) (Array, error) {
	if err := checkShape(shape, len(data)); err != nil {
		return Array{}, err
	}
	return Array{Shape: append([]int(nil), shape...), Data: data}, nil
}

// checkShape reports whether shape is a valid description of n elements.
func checkShape(shape []int, n int) error {
	for i, d := range shape {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d is negative (%d)", ErrShape, i, d)
		}
	}

	if size := numeric.Product(shape); size != n {
		return fmt.Errorf("%w: shape %v holds %d elements, data has %d", ErrShape, shape, size, n)
	}
	return nil
}

// Vector returns a 1-d array over data without copying.
func Vector(data ...float64) Array {
	return Array{Shape: []int{len(data)}, Data: data}
}

// ArrayFromMatrix copies a gonum matrix into a 2-d array of shape (rows, cols).
func ArrayFromMatrix(m mat.Matrix) Array {
	r, c := m.Dims()
	data := make([]float64, r*c)

	for i := range r {
		for j := range c {
			data[i*c+j] = m.At(i, j)
		}
	}

	return Array{Shape: []int{r, c}, Data: data}
}

// Size returns the number of elements.
func (a Array) Size() int {
	return len(a.Data)
}

// Dims returns the number of dimensions.
func (a Array) Dims() int {
	return len(a.Shape)
}

// At returns the element at idx. It panics if idx does not address an element.
func (a Array) At(idx ...int) float64 {
	return a.Data[a.offset(idx)]
}

// RGBAt returns the colour at idx of an array produced by MapArray. idx
// addresses the leading dimensions; the trailing colour axis is implied.
func (a Array) RGBAt(idx ...int) (r, g, b float64) {
	if len(a.Shape) == 0 || a.Shape[len(a.Shape)-1] != Channels {
		panic(fmt.Errorf("%w: shape %v has no trailing colour axis", ErrShape, a.Shape))
	}

	lead := Array{Shape: a.Shape[:len(a.Shape)-1]}
	off := lead.offset(idx) * Channels

	return a.Data[off], a.Data[off+1], a.Data[off+2]
}

func (a Array) offset(idx []int) int {
	if len(idx) != len(a.Shape) {
		panic(fmt.Errorf("%w: %d indices for %d dimensions", ErrShape, len(idx), len(a.Shape)))
	}

	off := 0
	for i, k := range idx {
		if k < 0 || k >= a.Shape[i] {
			panic(fmt.Sprintf("spectral: index %d out of range [0,%d) in dimension %d", k, a.Shape[i], i))
		}
		off = off*a.Shape[i] + k
	}
	return off
}

// ToRGB8 scales an array produced by MapArray to 8-bit colours in row-major
// order. Channels are multiplied by 255 and truncated toward zero.
// It returns an error wrapping [ErrShape] if the trailing axis is not 3 long.
func ToRGB8(a Array) ([]RGB8, error) {
	if len(a.Shape) == 0 || a.Shape[len(a.Shape)-1] != Channels {
		return nil, fmt.Errorf("%w: shape %v has no trailing colour axis", ErrShape, a.Shape)
	}
	if len(a.Data)%Channels != 0 || numeric.Product(a.Shape) != len(a.Data) {
		return nil, fmt.Errorf("%w: shape %v does not match %d elements", ErrShape, a.Shape, len(a.Data))
	}

	scaled := make([]float64, len(a.Data))
	vecmath.ScaleBlock(scaled, a.Data, 255)

	out := make([]RGB8, len(a.Data)/Channels)
	for i := range out {
		out[i] = RGB8{
			R: clamp8(scaled[3*i]),
			G: clamp8(scaled[3*i+1]),
			B: clamp8(scaled[3*i+2]),
		}
	}

	return out, nil
}

// clamp8 truncates a value already scaled to [0, 255].
func clamp8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
