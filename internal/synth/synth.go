// Package synth generates deterministic synthetic plaintexts and ciphertexts
// drawn from a language.Model. Tests and benchmarks across the module use it
// to build corpora whose statistics match the model exactly in expectation.
//
// Determinism:
//   - The same seed yields the same output on every platform.
//   - seed == 0 maps to DefaultSeed; no time-based sources are used.
//   - *rand.Rand is not goroutine-safe; every call builds its own stream.
package synth

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/vigenere"
)

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// RNG returns a deterministic *rand.Rand for seed (0 ⇒ DefaultSeed).
func RNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Plaintext draws n independent symbol indices from the model distribution
// by inverse-CDF sampling.
func Plaintext(m *language.Model, n int, rng *rand.Rand) []int {
	cdf := make([]float64, m.Size())
	var acc float64
	for i := range cdf {
		acc += m.Freq(i)
		cdf[i] = acc
	}

	out := make([]int, n)
	for i := range out {
		u := rng.Float64() * acc
		j := sort.SearchFloat64s(cdf, u)
		if j >= len(cdf) {
			j = len(cdf) - 1
		}
		// Skip zero-probability symbols sitting on the same cumulative value.
		for j < len(cdf)-1 && m.Freq(j) == 0 {
			j++
		}
		out[i] = j
	}

	return out
}

// Key draws an n-symbol key with the given seed.
func Key(m *language.Model, n int, seed int64) []int {
	rng := RNG(seed)
	k := make([]int, n)
	for i := range k {
		k[i] = rng.Intn(m.Size())
	}

	return k
}

// Corpus enciphers one synthetic plaintext per requested length with key and
// returns the ciphertexts as strings alongside the plaintext indices.
func Corpus(m *language.Model, key []int, lengths []int, seed int64) (ciphertexts []string, plaintexts [][]int) {
	rng := RNG(seed)
	a := m.Alphabet()
	for _, n := range lengths {
		p := Plaintext(m, n, rng)
		c, err := a.Decode(vigenere.EncryptIndices(p, key, a.Size()))
		if err != nil {
			panic(err) // indices come from the model's own alphabet
		}
		ciphertexts = append(ciphertexts, c)
		plaintexts = append(plaintexts, p)
	}

	return ciphertexts, plaintexts
}
