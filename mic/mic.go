package mic

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/matrix"
)

var (
	// ErrBadKeyLength is returned for a key length below 1.
	ErrBadKeyLength = errors.New("mic: key length must be >= 1")

	// ErrNoText is returned when RecoverKey receives zero texts.
	ErrNoText = errors.New("mic: no ciphertext supplied")

	// ErrNilModel is returned when no language model is supplied.
	ErrNilModel = errors.New("mic: nil language model")
)

// Recovery is the key recovered for one key length.
type Recovery struct {
	Key        []int     // key symbol indices, len = m
	Scores     []float64 // max M_g per position
	Confidence float64   // mean of Scores
}

// Options configures RecoverKey.
//
// Concurrency – maximum number of positions scored at once; ≤ 0 means GOMAXPROCS.
type Options struct {
	Concurrency int
}

// Option represents a functional option for configuring RecoverKey.
type Option func(*Options)

// WithConcurrency bounds the number of key positions scored in parallel.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// Profile is the circulant correlation matrix of a model: row g is the
// model distribution rotated right by g, so Profile·f yields every M_g.
func Profile(model *language.Model) (*matrix.Dense, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	s, err := matrix.NewCirculant(model.Freqs())
	if err != nil {
		return nil, fmt.Errorf("mic: profile: %w", err)
	}

	return s, nil
}

// ShiftScores returns the vector M_g for g = 0..size−1 of one frequency
// distribution against model. freq must have model.Size() entries.
func ShiftScores(freq []float64, model *language.Model) ([]float64, error) {
	s, err := Profile(model)
	if err != nil {
		return nil, err
	}
	y, err := matrix.MatVec(s, freq)
	if err != nil {
		return nil, fmt.Errorf("mic: %w", err)
	}

	return y, nil
}

// BestShift returns the index of the largest score, smallest index on ties.
func BestShift(scores []float64) (int, float64) {
	if len(scores) == 0 {
		return 0, 0
	}
	best := 0
	for g := 1; g < len(scores); g++ {
		if scores[g] > scores[best] {
			best = g
		}
	}

	return best, scores[best]
}

// Frequencies counts the symbols of texts per key position into an m×size
// matrix and L1-normalises each row. Position j collects every symbol at an
// offset ≡ j (mod m) of every text.
func Frequencies(texts [][]int, m, size int) (*matrix.Dense, error) {
	if m < 1 {
		return nil, ErrBadKeyLength
	}
	f, err := matrix.NewDense(m, size)
	if err != nil {
		return nil, fmt.Errorf("mic: %w", err)
	}
	for ti, t := range texts {
		for i, v := range t {
			if err := f.AddAt(i%m, v, 1); err != nil {
				return nil, fmt.Errorf("mic: text %d index %d value %d: %w", ti, i, v, language.ErrInvalidSymbol)
			}
		}
	}
	if _, err := matrix.NormalizeRowsL1(f); err != nil {
		return nil, fmt.Errorf("mic: %w", err)
	}

	return f, nil
}

// RecoverKey recovers an m-symbol key from texts enciphered with a repeating
// key of length m. See the package documentation for the scoring rule.
func RecoverKey(ctx context.Context, texts [][]int, m int, model *language.Model, opts ...Option) (Recovery, error) {
	if model == nil {
		return Recovery{}, ErrNilModel
	}
	if m < 1 {
		return Recovery{}, ErrBadKeyLength
	}
	if len(texts) == 0 {
		return Recovery{}, ErrNoText
	}
	o := Options{Concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}

	freqs, err := Frequencies(texts, m, model.Size())
	if err != nil {
		return Recovery{}, err
	}
	profile, err := Profile(model)
	if err != nil {
		return Recovery{}, err
	}

	rec := Recovery{Key: make([]int, m), Scores: make([]float64, m)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for j := 0; j < m; j++ {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := freqs.Row(j)
			if err != nil {
				return err
			}
			y, err := matrix.MatVec(profile, row)
			if err != nil {
				return fmt.Errorf("mic: position %d: %w", j, err)
			}
			rec.Key[j], rec.Scores[j] = BestShift(y)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Recovery{}, err
	}

	var sum float64
	for _, s := range rec.Scores {
		sum += s
	}
	rec.Confidence = sum / float64(m)

	return rec, nil
}
