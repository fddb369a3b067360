package language

import (
	"fmt"
	"math"
)

// SumTolerance is the maximum allowed |Σp − 1| for a frequency table.
const SumTolerance = 0.01

// swedishFreqs are single-letter frequencies of Swedish prose, index order a..z, å, ä, ö.
var swedishFreqs = []float64{
	0.09383, 0.01535, 0.01486, 0.04702, 0.10149, 0.02027, 0.02862, // a-g
	0.0209, 0.05817, 0.00614, 0.0314, 0.05275, 0.03471, 0.08542, // h-n
	0.04482, 0.01839, 0.0002, 0.08431, 0.0659, 0.07691, 0.01919, // o-u
	0.02415, 0.00142, 0.00159, 0.00708, 0.0007, // v-z
	0.0134, 0.018, 0.0131, // å ä ö
}

// Model is the expected symbol distribution of the plaintext language over an
// Alphabet. It is immutable and safe for concurrent use.
type Model struct {
	alphabet *Alphabet
	freqs    []float64
	maxIC    float64
}

// NewModel builds a Model from per-index probabilities.
//
// Errors:
//   - ErrFrequencyLength if len(freqs) != a.Size().
//   - ErrBadFrequencies if any value is negative/NaN/Inf or |Σp − 1| > SumTolerance.
//
// The table is copied; later changes to freqs do not affect the Model.
func NewModel(a *Alphabet, freqs []float64) (*Model, error) {
	if a == nil || len(freqs) != a.Size() {
		return nil, ErrFrequencyLength
	}

	var sum, sq float64
	for i, p := range freqs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("index %d value %v: %w", i, p, ErrBadFrequencies)
		}
		sum += p
		sq += p * p
	}
	if math.Abs(sum-1) > SumTolerance {
		return nil, fmt.Errorf("sum %.5f: %w", sum, ErrBadFrequencies)
	}

	cp := make([]float64, len(freqs))
	copy(cp, freqs)

	return &Model{alphabet: a, freqs: cp, maxIC: sq}, nil
}

// NewModelFromPercent builds a Model from a symbol→percentage table, the way
// published frequency charts are usually written. Values are normalised by
// their sum, so the table need not add up to exactly 100. Symbols missing
// from the table get probability 0.
//
// Errors:
//   - ErrInvalidSymbol if the table names a rune outside the alphabet.
//   - ErrBadFrequencies for negative values or an all-zero table.
func NewModelFromPercent(a *Alphabet, percent map[rune]float64) (*Model, error) {
	if a == nil {
		return nil, ErrFrequencyLength
	}
	freqs := make([]float64, a.Size())
	var total float64
	for r, v := range percent {
		i, ok := a.Index(r)
		if !ok {
			return nil, fmt.Errorf("frequency table symbol %q: %w", r, ErrInvalidSymbol)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("symbol %q value %v: %w", r, v, ErrBadFrequencies)
		}
		freqs[i] = v
		total += v
	}
	if total == 0 {
		return nil, ErrBadFrequencies
	}
	for i := range freqs {
		freqs[i] /= total
	}

	return NewModel(a, freqs)
}

// Uniform returns the model assigning 1/Size() to every symbol.
func Uniform(a *Alphabet) *Model {
	n := a.Size()
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = 1 / float64(n)
	}

	return &Model{alphabet: a, freqs: freqs, maxIC: 1 / float64(n)}
}

// Swedish returns the reference 29-symbol Swedish model.
func Swedish() *Model {
	m, err := NewModel(MustAlphabet(SwedishAlphabet), swedishFreqs)
	if err != nil {
		panic(err) // the built-in table is valid
	}

	return m
}

// Alphabet returns the model's alphabet.
func (m *Model) Alphabet() *Alphabet { return m.alphabet }

// Size is shorthand for m.Alphabet().Size().
func (m *Model) Size() int { return len(m.freqs) }

// Freq returns the expected probability of the symbol at index i.
func (m *Model) Freq(i int) float64 { return m.freqs[i] }

// Freqs returns a copy of the probability table in index order.
func (m *Model) Freqs() []float64 {
	out := make([]float64, len(m.freqs))
	copy(out, m.freqs)

	return out
}

// MaxIC returns Σ p², the theoretical index of coincidence of the language.
func (m *Model) MaxIC() float64 { return m.maxIC }
