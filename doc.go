// Package vigcrack breaks Vigenère ciphertexts whose key length is unknown
// but bounded, over a fixed alphabet with a known letter distribution
// (Swedish, 29 symbols, by default).
//
// The engine combines classical statistical attacks:
//
//	kasiski/    repeated substrings, distance factoring, key length candidates
//	friedman/   index of coincidence, key length selection
//	mic/        mutual index of coincidence, per-position key recovery
//	dictionary/ vocabulary-scored key length search (independent path)
//	analysis/   the Engine that runs the pipeline and builds reports
//
// Supporting packages:
//
//	language/ Alphabet and frequency Model
//	vigenere/ encryption, decryption, column partitioning
//	matrix/   dense kernels behind frequency correlation
//
// The command in cmd/vigcrack exposes the engine as a CLI and an HTTP server.
//
// Quick start:
//
//	e, _ := analysis.New(language.Swedish())
//	rep, err := e.Analyze(ctx, ciphertexts, 25, 250)
//	fmt.Println(rep.KeyLength, rep.Key)
//
// Determinism: every stage breaks ties toward the smallest value (length or
// shift) and aggregates concurrent work by index, so the same input always
// yields the same report.
package vigcrack
