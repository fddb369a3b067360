// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix:". Kernels wrap these with an
// operation tag via matrixErrorf; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. MatVec where len(x) != Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for uniform error wrapping.
const (
	opMatVec          = "MatVec"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opCirculant       = "NewCirculant"
)

// matrixErrorf attaches an operation tag to err, preserving errors.Is.
// Callers must only pass non-nil errors.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
