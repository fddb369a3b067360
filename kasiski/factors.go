package kasiski

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vigcrack/language"
)

// Factors returns every divisor of n in [2, n], ascending. n < 2 gives nil.
func Factors(n int) []int {
	if n < 2 {
		return nil
	}
	var low, high []int
	for d := 2; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if q := n / d; q != d {
			high = append(high, q)
		}
	}
	// high was filled in descending order.
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return append(low, n)
}

// Result is the outcome of a Kasiski factor tally.
type Result struct {
	// Candidates are the in-range factors whose count equals MaxCount, ascending.
	Candidates []int
	// Counts holds the occurrence count of every factor seen, in or out of range.
	Counts map[int]int
	// MaxCount is the global maximum over Counts (0 when nothing was tallied).
	MaxCount int
	// Distances is the number of distances tallied.
	Distances int
}

// Empty reports whether the tally produced no candidates.
func (r Result) Empty() bool { return len(r.Candidates) == 0 }

// Analyze tallies the factors of every distance in sets into one counter and
// returns the factors in [min, max] whose count equals the global maximum.
//
// The maximum is taken over all factors, in range or not. When that maximum
// belongs only to out-of-range factors the candidate set is empty, exactly as
// when no distances exist; callers treat both as "no Kasiski signal".
//
// Errors:
//   - language.ErrInvalidRange (wrapped) when min < 1 or min > max.
func Analyze(sets []Repeats, min, max int) (Result, error) {
	if err := language.ValidateRange(min, max); err != nil {
		return Result{}, fmt.Errorf("kasiski: %w", err)
	}

	res := Result{Counts: make(map[int]int)}
	memo := make(map[int][]int)
	for _, set := range sets {
		for _, dists := range set {
			for _, d := range dists {
				fs, ok := memo[d]
				if !ok {
					fs = Factors(d)
					memo[d] = fs
				}
				for _, f := range fs {
					res.Counts[f]++
				}
				res.Distances++
			}
		}
	}

	for _, c := range res.Counts {
		if c > res.MaxCount {
			res.MaxCount = c
		}
	}
	if res.MaxCount == 0 {
		return res, nil
	}
	for f, c := range res.Counts {
		if c == res.MaxCount && f >= min && f <= max {
			res.Candidates = append(res.Candidates, f)
		}
	}
	sort.Ints(res.Candidates)

	return res, nil
}

// Candidates runs FindRepeats with the Kasiski substring bounds over every
// text and tallies the result with Analyze.
func Candidates(texts []string, min, max int) (Result, error) {
	return CandidatesWithin(texts, min, max, KasiskiMinSubstring, KasiskiMaxSubstring)
}

// CandidatesWithin is Candidates with explicit substring bounds.
func CandidatesWithin(texts []string, min, max, subMin, subMax int) (Result, error) {
	sets := make([]Repeats, 0, len(texts))
	for _, t := range texts {
		sets = append(sets, FindRepeats(t, subMin, subMax))
	}

	return Analyze(sets, min, max)
}
