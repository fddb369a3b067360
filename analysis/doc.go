// Package analysis wires the cryptanalysis stages into one engine.
//
// The statistical path runs
//
//	ciphertexts → kasiski candidates → friedman selection → mic key recovery → decryption
//
// and the dictionary path scores every key length in the range by decrypting
// with a mic-recovered key and counting vocabulary coverage. Both paths share
// one read-only language.Model.
//
// Failure policy: an out-of-range search interval, zero ciphertexts or a
// symbol outside the alphabet fail the whole call before any stage runs; no
// partial report is produced. A Kasiski pass without candidates is not an
// error: the Friedman stage scans the whole range and Report.Fallback is set.
// A missing vocabulary fails only the dictionary path.
package analysis
