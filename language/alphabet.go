package language

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SwedishAlphabet lists the 29 symbols of the reference model in index order.
const SwedishAlphabet = "abcdefghijklmnopqrstuvwxyzåäö"

// Alphabet is an ordered set of unique runes with a bijective symbol↔index
// mapping. It is immutable after construction and safe for concurrent use.
type Alphabet struct {
	symbols []rune       // index → symbol
	index   map[rune]int // symbol → index
}

// NewAlphabet builds an Alphabet from the runes of symbols, in order.
//
// Errors:
//   - ErrAlphabetTooSmall if symbols holds fewer than two runes.
//   - ErrDuplicateSymbol if a rune repeats.
//
// Complexity: O(n) time and space, n = rune count.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 {
		return nil, ErrAlphabetTooSmall
	}

	idx := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := idx[r]; dup {
			return nil, symbolErrorDup(r, i)
		}
		idx[r] = i
	}

	return &Alphabet{symbols: runes, index: idx}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// Intended for package-level constants and tests.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns the alphabet as a string, in index order.
func (a *Alphabet) Symbols() string { return string(a.symbols) }

// Index returns the index of r and whether r belongs to the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]

	return i, ok
}

// Symbol returns the rune at index i. It panics if i is out of range,
// like a slice access; use Decode for validated conversion.
func (a *Alphabet) Symbol(i int) rune { return a.symbols[i] }

// Contains reports whether every rune of text belongs to the alphabet.
func (a *Alphabet) Contains(text string) bool {
	for _, r := range text {
		if _, ok := a.index[r]; !ok {
			return false
		}
	}

	return true
}

// Encode converts text to alphabet indices.
// The first rune outside the alphabet yields an error wrapping ErrInvalidSymbol;
// no partial result is returned.
func (a *Alphabet) Encode(text string) ([]int, error) {
	out := make([]int, 0, utf8.RuneCountInString(text))
	offset := 0
	for _, r := range text {
		i, ok := a.index[r]
		if !ok {
			return nil, symbolError(r, offset)
		}
		out = append(out, i)
		offset++
	}

	return out, nil
}

// Decode maps indices back to symbols. Any index outside [0, Size())
// yields an error wrapping ErrInvalidSymbol.
func (a *Alphabet) Decode(idx []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(idx) * utf8.UTFMax)
	for off, i := range idx {
		if i < 0 || i >= len(a.symbols) {
			return "", indexError(i, off)
		}
		sb.WriteRune(a.symbols[i])
	}

	return sb.String(), nil
}

// Clean lowercases text and drops every rune that is not in the alphabet.
// Use it to turn free prose into encryptable plaintext.
func (a *Alphabet) Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if _, ok := a.index[r]; ok {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
