// Package dictionary ranks Vigenère key lengths by how much of the resulting
// plaintext is made of known words.
//
// Overview:
//
//   - A Vocabulary is a rune trie of lowercase words, loaded from a
//     word→frequency JSON object or a plain word list.
//   - Score scans a plaintext left to right. At each position the longest
//     vocabulary word matching the remaining text is consumed and adds its
//     rune length; when no word matches, one rune is skipped and
//     UnmatchedPenalty is subtracted.
//   - ScoreLengths recovers a key for every length in a range with package
//     mic, decrypts every ciphertext with it and sums the scores. Best picks the
//     highest total, smallest length on ties.
//
// This path needs no Kasiski pre-filter; it is slower than coincidence-based
// selection but independent of it, which makes it a useful cross-check.
//
// Errors (sentinel):
//
//   - ErrVocabularyUnavailable for a nil or empty vocabulary.
package dictionary
