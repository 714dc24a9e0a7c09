package vector

import (
	"fmt"
	"math"
	"slices"
)

// Batch is an immutable collection of N vectors sharing one dimension.
//
// Vectors are stored row-major in a single backing slice. Constructors copy
// their input and accessors return copies, so a Batch never aliases caller
// memory.
type Batch struct {
	dim  int
	data []float64
}

// New creates a batch of dimension dim from flattened row-major data.
func New(dim int, data []float64) (*Batch, error) {
	if dim < 1 {
		return nil, &InvalidDimensionError{Dimension: dim}
	}
	if len(data) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(data)%dim != 0 {
		return nil, &InvalidDimensionError{
			Dimension: dim,
			cause:     fmt.Errorf("%d values do not form whole vectors", len(data)),
		}
	}
	return &Batch{dim: dim, data: slices.Clone(data)}, nil
}

// FromRows creates a batch from individual vectors of equal length.
func FromRows(rows [][]float64) (*Batch, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}
	dim := len(rows[0])
	if dim < 1 {
		return nil, &InvalidDimensionError{Dimension: dim}
	}
	data := make([]float64, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, &InvalidDimensionError{
				Dimension: len(row),
				Expected:  dim,
				cause:     fmt.Errorf("row %d", i),
			}
		}
		data = append(data, row...)
	}
	return &Batch{dim: dim, data: data}, nil
}

// FromVector promotes a single vector to a batch of one.
func FromVector(v []float64) (*Batch, error) {
	return New(len(v), v)
}

// Of2 creates a batch of 2D vectors.
func Of2(vs ...[2]float64) (*Batch, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyBatch
	}
	data := make([]float64, 0, 2*len(vs))
	for _, v := range vs {
		data = append(data, v[0], v[1])
	}
	return &Batch{dim: 2, data: data}, nil
}

// Of3 creates a batch of 3D vectors.
func Of3(vs ...[3]float64) (*Batch, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyBatch
	}
	data := make([]float64, 0, 3*len(vs))
	for _, v := range vs {
		data = append(data, v[0], v[1], v[2])
	}
	return &Batch{dim: 3, data: data}, nil
}

// MustOf3 is like Of3 but panics on error. Intended for tests and literals.
func MustOf3(vs ...[3]float64) *Batch {
	b, err := Of3(vs...)
	if err != nil {
		panic(err)
	}
	return b
}

// wrap takes ownership of data; callers guarantee a valid shape.
func wrap(dim int, data []float64) *Batch {
	return &Batch{dim: dim, data: data}
}

// Len returns the number of vectors.
func (b *Batch) Len() int {
	if b == nil || b.dim == 0 {
		return 0
	}
	return len(b.data) / b.dim
}

// Dim returns the vector dimension.
func (b *Batch) Dim() int {
	if b == nil {
		return 0
	}
	return b.dim
}

// Row returns a copy of vector i.
func (b *Batch) Row(i int) []float64 {
	return slices.Clone(b.row(i))
}

func (b *Batch) row(i int) []float64 {
	return b.data[i*b.dim : (i+1)*b.dim]
}

// Rows returns a copy of every vector.
func (b *Batch) Rows() [][]float64 {
	if b == nil {
		return nil
	}
	data := slices.Clone(b.data)
	rows := make([][]float64, b.Len())
	for i := range rows {
		rows[i] = data[i*b.dim : (i+1)*b.dim : (i+1)*b.dim]
	}
	return rows
}

// Data returns a copy of the flattened row-major values.
func (b *Batch) Data() []float64 {
	if b == nil {
		return nil
	}
	return slices.Clone(b.data)
}

// Equal reports whether both batches have the same shape and bit-identical values.
func (b *Batch) Equal(o *Batch) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Dim() != o.Dim() || b.Len() != o.Len() {
		return false
	}
	for i, v := range b.data {
		if math.Float64bits(v) != math.Float64bits(o.data[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (b *Batch) String() string {
	if b == nil {
		return "Batch(nil)"
	}
	return fmt.Sprintf("Batch(%d, %d)%v", b.Len(), b.Dim(), b.Rows())
}

func check(bs ...*Batch) error {
	for _, b := range bs {
		if b.Len() == 0 {
			return ErrEmptyBatch
		}
	}
	return nil
}
