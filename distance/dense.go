// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"strings"
)

// Dense is an n×n distance matrix stored row-major in a flat slice.
// The zero value is not usable; construct with NewDense or FromRows.
type Dense struct {
	n    int       // number of cities
	data []float64 // len(data) == n*n
}

var _ Provider = (*Dense)(nil)

// NewDense creates an n×n matrix of zeros.
// Returns ErrEmpty for n ≤ 0.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FromRows copies a [][]float64 into a new Dense.
// Every row must have exactly len(rows) entries.
//
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	var n = len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	d := &Dense{n: n, data: make([]float64, n*n)}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNotSquare)
		}
		copy(d.data[i*n:(i+1)*n], rows[i])
	}

	return d, nil
}

// Size returns the number of cities.
func (d *Dense) Size() int { return d.n }

// indexOf maps (i, j) to the flat offset or returns ErrOutOfRange.
func (d *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Dense(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return i*d.n + j, nil
}

// At returns d(i, j).
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	idx, err := d.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns d(i, j) = w. No value policy is applied here; Validate does that.
// Complexity: O(1).
func (d *Dense) Set(i, j int, w float64) error {
	idx, err := d.indexOf(i, j)
	if err != nil {
		return err
	}
	d.data[idx] = w

	return nil
}

// SetSymmetric assigns both d(i, j) and d(j, i).
func (d *Dense) SetSymmetric(i, j int, w float64) error {
	if err := d.Set(i, j, w); err != nil {
		return err
	}

	return d.Set(j, i, w)
}

// Row returns row i as a read-only view into the backing storage.
// Callers must not modify the returned slice.
func (d *Dense) Row(i int) []float64 {
	return d.data[i*d.n : (i+1)*d.n]
}

// Clone returns an independent deep copy.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{n: d.n, data: cp}
}

// String implements fmt.Stringer for debugging.
func (d *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < d.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
