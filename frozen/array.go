// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Absolute and relative tolerances of the occupation pre-conditions.
const (
	absTol = 1e-8
	relTol = 1e-5
)

// array is an orbital quantity normalized to [channel][orbital].
type array struct {
	data [][]float64
	ndim int
}

// newArray copies m into channel-major form. A mat.Vector is one channel
// (ndim 1); any other matrix has one channel per row (ndim 2).
func newArray(m mat.Matrix) (array, error) {
	if m == nil {
		return array{}, fmt.Errorf("nil orbital array: %w", ErrShapeMismatch)
	}
	if v, ok := m.(mat.Vector); ok {
		row := make([]float64, v.Len())
		for i := range row {
			row[i] = v.AtVec(i)
		}
		return array{data: [][]float64{row}, ndim: 1}, nil
	}

	r, _ := m.Dims()
	data := make([][]float64, r)
	for i := range data {
		data[i] = mat.Row(nil, i, m)
	}

	return array{data: data, ndim: 2}, nil
}

func (a array) channels() int { return len(a.data) }

func (a array) orbitals() int {
	if len(a.data) == 0 {
		return 0
	}

	return len(a.data[0])
}

func (a array) sameShape(b array) bool {
	return a.ndim == b.ndim && a.channels() == b.channels() && a.orbitals() == b.orbitals()
}

func (a array) sum() float64 {
	total := 0.0
	for _, row := range a.data {
		for _, v := range row {
			total += v
		}
	}

	return total
}

func (a array) max() float64 {
	best := math.Inf(-1)
	for _, row := range a.data {
		for _, v := range row {
			best = math.Max(best, v)
		}
	}

	return best
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= absTol+relTol*math.Abs(b)
}

// checkOccupation verifies the occupation pre-conditions against the
// molecule's electron count.
func checkOccupation(occ array, nelectron int) error {
	if occ.ndim != 1 && occ.ndim != 2 {
		return fmt.Errorf("occupation has %d dimensions: %w", occ.ndim, ErrSanity)
	}
	if occ.channels() == 0 || occ.orbitals() == 0 {
		return fmt.Errorf("empty occupation: %w", ErrSanity)
	}
	if sum := occ.sum(); !approxEqual(sum, float64(nelectron)) {
		return fmt.Errorf("occupation sums to %g, molecule has %d electrons: %w", sum, nelectron, ErrSanity)
	}
	for ch, row := range occ.data {
		for i, v := range row {
			if v < -absTol {
				return fmt.Errorf("occupation[%d][%d]=%g is negative: %w", ch, i, v, ErrSanity)
			}
			if !approxEqual(math.Round(v), v) {
				return fmt.Errorf("occupation[%d][%d]=%g is not integral: %w", ch, i, v, ErrSanity)
			}
			if i > 0 && v > row[i-1] && !approxEqual(row[i-1], v) {
				return fmt.Errorf("occupation[%d] increases at orbital %d: %w", ch, i, ErrSanity)
			}
		}
	}

	return nil
}
