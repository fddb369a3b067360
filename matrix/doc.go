// SPDX-License-Identifier: MIT

// Package matrix is the small dense numeric kernel behind frequency
// correlation: a row-major float64 matrix, L1 row normalisation, circulant
// construction and the matrix–vector product.
//
// Purpose:
//   - Hold per-position symbol counts of a ciphertext as one m×n Dense
//     (m = key length, n = alphabet size) and turn them into relative
//     frequencies with NormalizeRowsL1.
//   - Express "correlate a distribution against every cyclic shift of the
//     language profile" as one product y = C·f, where C = NewCirculant(profile).
//
// Determinism & Policy:
//   - Fixed i→j loop orders everywhere; no map iteration; no randomness.
//   - Public accessors return sentinel errors instead of panicking.
//   - Zero rows are degenerate, not errors: NormalizeRowsL1 leaves them at zero.
//
// Errors (sentinel):
//   - ErrInvalidDimensions, ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//     Kernels wrap them as "<Op>: <cause>"; match with errors.Is.
//
// Concurrency:
//   - A Dense is safe for concurrent reads. Concurrent Set calls on distinct
//     rows do not race (disjoint slice cells); anything else needs external sync.
package matrix
