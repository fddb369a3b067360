package friedman

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/vigenere"
)

// IndexOfCoincidence returns Σ (c/n)·((c−1)/(n−1)) over the symbol counts of
// text, where symbols are indices in [0, size). Indices outside that range
// are not counted. A text with n ≤ 1 counted symbols scores exactly 0.
func IndexOfCoincidence(text []int, size int) float64 {
	if size < 1 {
		return 0
	}
	counts := make([]int, size)
	n := 0
	for _, v := range text {
		if v < 0 || v >= size {
			continue
		}
		counts[v]++
		n++
	}
	if n <= 1 {
		return 0
	}

	nf := float64(n)
	var ic float64
	for _, c := range counts {
		if c < 2 {
			continue
		}
		cf := float64(c)
		ic += (cf / nf) * ((cf - 1) / (nf - 1))
	}

	return ic
}

// MeanIC partitions texts into m columns and returns the mean of their
// coincidence indices. Empty columns contribute 0.
func MeanIC(texts [][]int, m, size int) float64 {
	cols := vigenere.Columns(texts, m)
	var sum float64
	for _, c := range cols {
		sum += IndexOfCoincidence(c, size)
	}

	return sum / float64(m)
}

// Lengths returns the lengths Select will score: candidates inside [min, max],
// deduplicated and ascending, or every length in [min, max] when none
// survive. The boolean reports the exhaustive case.
func Lengths(candidates []int, min, max int) ([]int, bool) {
	seen := make(map[int]bool, len(candidates))
	var out []int
	for _, c := range candidates {
		if c < min || c > max || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) > 0 {
		sort.Ints(out)

		return out, false
	}

	out = make([]int, 0, max-min+1)
	for m := min; m <= max; m++ {
		out = append(out, m)
	}

	return out, true
}

// Select picks the key length whose mean column coincidence is closest to
// model.MaxIC(). See the package documentation for candidate handling and
// tie-breaking.
func Select(ctx context.Context, texts [][]int, model *language.Model, min, max int, candidates []int, opts ...Option) (Selection, error) {
	if model == nil {
		return Selection{}, ErrNilModel
	}
	if err := language.ValidateRange(min, max); err != nil {
		return Selection{}, fmt.Errorf("friedman: %w", err)
	}
	if len(texts) == 0 {
		return Selection{}, ErrNoText
	}
	size := model.Size()
	for ti, t := range texts {
		for i, v := range t {
			if v < 0 || v >= size {
				return Selection{}, fmt.Errorf("friedman: text %d index %d value %d: %w", ti, i, v, language.ErrInvalidSymbol)
			}
		}
	}
	o := buildOptions(opts)

	lengths, exhaustive := Lengths(candidates, min, max)
	target := model.MaxIC()
	scores := make([]LengthScore, len(lengths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, m := range lengths {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mean := MeanIC(texts, m, size)
			d := mean - target
			scores[i] = LengthScore{Length: m, MeanIC: mean, Distance: d * d}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Selection{}, err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Distance < scores[best].Distance {
			best = i
		}
	}

	return Selection{
		Length:     scores[best].Length,
		Score:      scores[best].MeanIC,
		Distance:   scores[best].Distance,
		Scores:     scores,
		Exhaustive: exhaustive,
	}, nil
}
