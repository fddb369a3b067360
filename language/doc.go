// Package language holds the configuration every cryptanalysis stage shares:
// the ordered symbol Alphabet and the frequency Model of the plaintext language.
//
// Overview:
//
//   - Alphabet is an immutable, ordered set of unique runes with a bijective
//     symbol↔index mapping. All ciphers in this module work on indices in
//     [0, Size()) and add or subtract modulo Size().
//   - Model assigns each alphabet symbol its expected relative frequency in the
//     target language and exposes MaxIC = Σ p², the index of coincidence of a
//     monoalphabetic text drawn from that language.
//   - Swedish() returns the reference 29-symbol model (a–z, å, ä, ö).
//
// Ownership:
//
//   - An Alphabet and a Model are built once per analysis run and shared
//     read-only by every stage. Neither type has mutating methods, so concurrent
//     use needs no locking.
//
// Errors (sentinel):
//
//   - ErrAlphabetTooSmall: fewer than two symbols.
//   - ErrDuplicateSymbol:  the same rune listed twice.
//   - ErrInvalidSymbol:    a text, key or index outside the alphabet.
//   - ErrFrequencyLength:  frequency table length differs from alphabet size.
//   - ErrBadFrequencies:   negative/NaN entries or a sum too far from 1.
//   - ErrInvalidRange:     key-length range with min < 1 or min > max.
//
// Example:
//
//	m := language.Swedish()
//	idx, err := m.Alphabet().Encode("hejsan")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(idx, m.MaxIC())
package language
