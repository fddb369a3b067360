package vigenere

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vigcrack/language"
)

// ErrEmptyKey indicates an empty key (or a non-positive random key length).
var ErrEmptyKey = errors.New("vigenere: key must be non-empty")

// Encrypt enciphers plaintext with key over alphabet a.
func Encrypt(a *language.Alphabet, plaintext, key string) (string, error) {
	return apply(a, plaintext, key, EncryptIndices)
}

// Decrypt deciphers ciphertext with key over alphabet a.
//
// Errors:
//   - ErrEmptyKey for an empty key.
//   - language.ErrInvalidSymbol (wrapped) when text or key leaves the alphabet.
func Decrypt(a *language.Alphabet, ciphertext, key string) (string, error) {
	return apply(a, ciphertext, key, DecryptIndices)
}

func apply(a *language.Alphabet, text, key string, op func(text, key []int, size int) []int) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	k, err := a.Encode(key)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	t, err := a.Encode(text)
	if err != nil {
		return "", fmt.Errorf("text: %w", err)
	}

	return a.Decode(op(t, k, a.Size()))
}

// EncryptIndices returns (text[i] + key[i mod len(key)]) mod size for each i.
// Inputs must already be valid indices in [0, size) and key must be non-empty.
func EncryptIndices(text, key []int, size int) []int {
	out := make([]int, len(text))
	for i, v := range text {
		out[i] = (v + key[i%len(key)]) % size
	}

	return out
}

// DecryptIndices returns (text[i] − key[i mod len(key)]) mod size for each i,
// always in [0, size). Same input contract as EncryptIndices.
func DecryptIndices(text, key []int, size int) []int {
	out := make([]int, len(text))
	for i, v := range text {
		out[i] = ((v-key[i%len(key)])%size + size) % size
	}

	return out
}

// Columns partitions texts into m interleaved subtexts: column j holds every
// symbol at a position ≡ j (mod m), taken from each text in input order and
// concatenated. Columns beyond the length of every text are empty, not nil.
// Columns panics if m < 1.
func Columns(texts [][]int, m int) [][]int {
	total := 0
	for _, t := range texts {
		total += len(t)
	}

	cols := make([][]int, m)
	per := total/m + 1
	for j := range cols {
		cols[j] = make([]int, 0, per)
	}
	for _, t := range texts {
		for i, v := range t {
			cols[i%m] = append(cols[i%m], v)
		}
	}

	return cols
}

// RandomKey draws an n-symbol key uniformly from alphabet a.
// A nil rng uses a source seeded from the package-level math/rand generator,
// so the key is not reproducible.
func RandomKey(a *language.Alphabet, n int, rng *rand.Rand) (string, error) {
	if n < 1 {
		return "", ErrEmptyKey
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(a.Size())
	}

	return a.Decode(idx)
}
