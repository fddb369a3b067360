// Package kasiski implements Kasiski examination: it finds repeated substrings
// in a ciphertext, records the forward distances between their successive
// occurrences, and tallies the factors of those distances into key-length
// candidates.
//
// Overview:
//
//   - Repeats arise when identical plaintext fragments line up with identical
//     key offsets, so the distance between them is a multiple of the key length.
//   - FindRepeats pairs each occurrence only with its nearest following
//     occurrence in the same length bucket: k occurrences give k−1 distances,
//     never all pairwise distances and never backward matches.
//   - Analyze factors every distance (divisors in [2, d], d included), tallies
//     them across all ciphertexts in one counter, and returns every factor in
//     the requested range whose count equals the global maximum count.
//
// Determinism:
//
//   - Ties are never broken: all maximum-count factors are returned, in
//     ascending order. Map iteration order never reaches the output.
//
// Degenerate cases:
//
//   - A text shorter than the minimum substring length has no repeats.
//   - No distances at all yields an empty candidate set; callers fall back to
//     scanning the whole range (see package friedman).
//
// Complexity:
//
//   - FindRepeats: O(L·n) substrings for L lengths over n runes, each hashed once.
//   - Analyze: O(D·√d) divisor enumeration for D distances of size ≤ d.
package kasiski
