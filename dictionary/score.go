package dictionary

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/mic"
	"github.com/katalvlaran/vigcrack/vigenere"
)

// UnmatchedPenalty is subtracted for every rune not covered by a word.
const UnmatchedPenalty = 1

var (
	// ErrNilModel is returned when no language model is supplied.
	ErrNilModel = errors.New("dictionary: nil language model")

	// ErrNoText is returned when ScoreLengths receives zero texts.
	ErrNoText = errors.New("dictionary: no ciphertext supplied")
)

// LengthScore is the dictionary evaluation of one key length.
type LengthScore struct {
	Length      int     `json:"length"`
	Key         string  `json:"key"`
	Score       int     `json:"score"`
	Correlation float64 `json:"correlation"` // mean max M_g of the recovered key
}

// Options configures ScoreLengths.
//
// Concurrency – maximum number of lengths evaluated at once; ≤ 0 means GOMAXPROCS.
type Options struct {
	Concurrency int
}

// Option represents a functional option for configuring ScoreLengths.
type Option func(*Options)

// WithConcurrency bounds the number of key lengths evaluated in parallel.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// Score returns the greedy longest-match score of plaintext against v:
// matched words add their rune length, each unmatched rune subtracts
// UnmatchedPenalty. A nil or empty vocabulary matches nothing.
func Score(plaintext string, v *Vocabulary) int {
	text := []rune(plaintext)
	score := 0
	for i := 0; i < len(text); {
		n := 0
		if v.Len() > 0 {
			n = v.longestMatch(text, i)
		}
		if n == 0 {
			score -= UnmatchedPenalty
			i++
			continue
		}
		score += n
		i += n
	}

	return score
}

// ScoreLengths evaluates every key length in [min, max]: it recovers the key
// with mic.RecoverKey, decrypts every text and sums their Score. The result
// is ascending by length.
func ScoreLengths(ctx context.Context, texts [][]int, model *language.Model, v *Vocabulary, min, max int, opts ...Option) ([]LengthScore, error) {
	if err := v.Available(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if err := language.ValidateRange(min, max); err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	if len(texts) == 0 {
		return nil, ErrNoText
	}
	o := Options{Concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}

	a := model.Alphabet()
	out := make([]LengthScore, max-min+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i := range out {
		i := i
		m := min + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := mic.RecoverKey(gctx, texts, m, model, mic.WithConcurrency(1))
			if err != nil {
				return fmt.Errorf("dictionary: length %d: %w", m, err)
			}
			key, err := a.Decode(rec.Key)
			if err != nil {
				return fmt.Errorf("dictionary: length %d: %w", m, err)
			}
			total := 0
			for _, t := range texts {
				plain, err := a.Decode(vigenere.DecryptIndices(t, rec.Key, a.Size()))
				if err != nil {
					return fmt.Errorf("dictionary: length %d: %w", m, err)
				}
				total += Score(plain, v)
			}
			out[i] = LengthScore{Length: m, Key: key, Score: total, Correlation: rec.Confidence}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Best returns the highest-scoring entry, the smallest length on ties.
// The boolean is false for an empty input.
func Best(scores []LengthScore) (LengthScore, bool) {
	if len(scores) == 0 {
		return LengthScore{}, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score || (s.Score == best.Score && s.Length < best.Length) {
			best = s
		}
	}

	return best, true
}
