// Package mic recovers the symbols of a Vigenère key of known length with the
// mutual index of coincidence.
//
// Overview:
//
//   - For key position j the column of symbols at positions ≡ j (mod m) is a
//     Caesar shift of natural language. Its relative frequencies f are compared
//     with every cyclic shift g of the language profile p:
//
//     M_g = Σ_i p_i · f_{(i+g) mod size}
//
//     and the shift with the largest M_g is the key symbol at position j.
//   - All shifts are evaluated at once as y = S·f with the circulant profile
//     matrix S[g][k] = p[(k−g) mod size] (matrix.NewCirculant, matrix.MatVec).
//   - Counts for every position are accumulated in one pass into an m×size
//     matrix.Dense and L1-normalised per row (matrix.NormalizeRowsL1).
//
// Determinism:
//
//   - Positions are scored concurrently, results are written by index, and the
//     argmax keeps the smallest shift on equal scores.
//
// Degenerate cases:
//
//   - A position with no symbols has an all-zero distribution: every M_g is 0
//     and the key symbol is 0.
//
// Errors (sentinel):
//
//   - ErrBadKeyLength, ErrNoText, ErrNilModel; language.ErrInvalidSymbol wrapped.
package mic
