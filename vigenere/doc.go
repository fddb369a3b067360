// Package vigenere implements the repeating-key polyalphabetic substitution
// cipher over a language.Alphabet, and the interleaved-subtext partitioning the
// cryptanalysis stages share.
//
// Encryption adds the repeated key index stream to the plaintext index stream
// modulo the alphabet size; decryption subtracts it. Both are pure and total
// over validated input: any symbol outside the alphabet, in text or key, is
// rejected with language.ErrInvalidSymbol before any output is produced.
package vigenere
