// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Hot-path helpers (Row, Scale) for solvers that sweep whole rows per step.
//
// Complexity quicksheet:
//   - NewDense/NewSquare: O(r*c) zero-init; At/Set/Add: O(1); Clone: O(r*c);
//     Row: O(1) (aliasing); Scale: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/blas/gonum"
)

// error context tags
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxAdd = "Add"
	ctxRow = "Row"
)

// blasImpl is the pure-Go BLAS engine used for whole-buffer kernels.
var blasImpl gonum.Implementation

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is allowed only via NewSquare/NewFilled.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Public general-shape constructor: empty dimensions are rejected with
// ErrInvalidDimensions to avoid accidental 0×c matrices.
//
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix. Unlike NewDense, n==0 is valid and
// yields an empty 0×0 matrix; n<0 returns ErrInvalidDimensions.
//
// Complexity: O(n²) time and space.
func NewSquare(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: n, c: n, data: make([]float64, n*n)}, nil
}

// NewFilled creates an n×n matrix with every entry (diagonal included) set to v.
// v must be finite (ErrNaNInf otherwise); n follows the NewSquare contract.
//
// Complexity: O(n²).
func NewFilled(n int, v float64) (*Dense, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNaNInf
	}
	m, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	var k int
	for k = range m.data {
		m.data[k] = v
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add increments the element at (row, col) by delta.
// Used for additive updates (e.g. pheromone deposits) without an At/Set pair.
func (m *Dense) Add(row, col int, delta float64) error {
	idx, err := m.indexOf(ctxAdd, row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta

	return nil
}

// Row returns row i as a slice ALIASING the backing buffer.
// Writes through the slice mutate the matrix; callers that need an independent
// copy must copy it. Intended for read-mostly hot loops.
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Scale multiplies every element in place by f (BLAS Dscal over the flat buffer).
//
// Complexity: O(r*c).
func (m *Dense) Scale(f float64) {
	if len(m.data) == 0 {
		return
	}
	blasImpl.Dscal(len(m.data), f, m.data, 1)
}

// IsSymmetric reports whether the matrix is square and |a[i,j]-a[j,i]| <= eps
// for all i<j. Exact symmetry is checked with eps==0.
//
// Complexity: O(n²).
func (m *Dense) IsSymmetric(eps float64) bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return false
			}
		}
	}

	return true
}

// Copy returns a deep copy as *Dense (no aliasing with the receiver).
//
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Clone implements Matrix via Copy.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Equal reports whether o has the same shape and bit-identical contents.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
