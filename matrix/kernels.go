// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Dense kernels used by frequency correlation: MatVec, NormalizeRowsL1, NewCirculant.
//
// Determinism:
//  - Fixed i→j loop order; results are bit-identical across runs.

package matrix

import "fmt"

// ZeroSum is the accumulator's initial value.
const ZeroSum = 0.0

// MatVec computes y = m · x.
// Implementation:
//   - Stage 1: Validate m (not nil) and len(x) == m.Cols().
//   - Stage 2: Row-major dot products; *Dense takes a flat fast path, other
//     Matrix implementations go through At.
//
// Inputs:
//   - m: r×c Matrix.
//   - x: vector of length c.
//
// Returns:
//   - []float64 of length r.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var acc, xv float64
		for i := 0; i < d.r; i++ {
			acc = ZeroSum
			base := i * d.c
			for j := 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			mv, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// NormalizeRowsL1 scales every row of d in place so that Σ_j |d_ij| = 1.
// Implementation:
//   - Stage 1: Validate d (not nil).
//   - Stage 2: Compute the L1 norm of each row, then divide.
//
// Behavior highlights:
//   - Rows with norm 0 are degenerate and left unchanged (all zeros stay zeros).
//
// Returns:
//   - []float64: the L1 norm of each row before scaling (len = Rows()).
//
// Errors:
//   - ErrNilMatrix (wrapped with "NormalizeRowsL1").
//
// Complexity:
//   - Time O(r*c), Space O(r).
func NormalizeRowsL1(d *Dense) ([]float64, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	norms := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		s := ZeroSum
		for j := 0; j < d.c; j++ {
			v := d.data[base+j]
			if v < 0 {
				v = -v
			}
			s += v
		}
		norms[i] = s
		if s == 0 {
			continue
		}
		inv := 1 / s
		for j := 0; j < d.c; j++ {
			d.data[base+j] *= inv
		}
	}

	return norms, nil
}

// NewCirculant builds the n×n matrix C with C[i][j] = v[(j−i) mod n], so that
// row i is v rotated right by i positions.
// Implementation:
//   - Stage 1: Validate v (non-empty, finite).
//   - Stage 2: Fill row by row with a single modular index.
//
// Behavior highlights:
//   - (C·f)_i = Σ_j v[(j−i) mod n]·f_j = Σ_k v_k·f_{(k+i) mod n}, the
//     correlation of f with v at shift i.
//
// Errors:
//   - ErrInvalidDimensions for an empty v, ErrNaNInf for non-finite entries
//     (wrapped with "NewCirculant").
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewCirculant(v []float64) (*Dense, error) {
	n := len(v)
	if n == 0 {
		return nil, matrixErrorf(opCirculant, ErrInvalidDimensions)
	}
	if err := ValidateFinite(v); err != nil {
		return nil, matrixErrorf(opCirculant, err)
	}
	c, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCirculant, err)
	}
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			c.data[base+j] = v[((j-i)%n+n)%n]
		}
	}

	return c, nil
}
