// Package friedman scores and selects a Vigenère key length with Friedman's
// index of coincidence.
//
// Overview:
//
//   - IndexOfCoincidence measures how likely two symbols drawn without
//     replacement from a text are equal: Σ (c/n)·((c−1)/(n−1)) over symbol
//     counts c. Monoalphabetic text scores near the language's Σ p²; random
//     text near 1/size.
//   - Select partitions the ciphertexts into m interleaved columns for every
//     candidate length m, averages the column coincidence, and picks the m
//     whose mean lies closest (squared distance) to the model's MaxIC.
//
// Candidate handling:
//
//   - Explicit candidates (typically Kasiski output) are clipped to the range,
//     deduplicated and sorted. When nothing survives, every length in the range
//     is scanned and Selection.Exhaustive is set.
//
// Determinism:
//
//   - Lengths are scored concurrently but results are written by index and the
//     winner is chosen in one ascending pass: equal distances resolve to the
//     smallest length regardless of scheduling.
//
// Errors (sentinel):
//
//   - ErrNilModel, ErrNoText; language.ErrInvalidRange and
//     language.ErrInvalidSymbol arrive wrapped. Match with errors.Is.
//
// Complexity:
//
//   - Select: O(K·N) for K scored lengths over N total symbols.
package friedman
