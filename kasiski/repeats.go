package kasiski

import "sort"

// Substring bounds used by the general repeat finder and by Kasiski candidate
// generation. Most Swedish words are 3–6 letters long; Kasiski use scans a
// wider band so that long aligned fragments are not missed.
const (
	DefaultMinSubstring = 3
	DefaultMaxSubstring = 6
	KasiskiMinSubstring = 4
	KasiskiMaxSubstring = 24
)

// Repeats maps each repeated substring to the forward distances between its
// successive occurrences, in ascending position order.
type Repeats map[string][]int

// Record is one repeated substring and its distances.
type Record struct {
	Substring string
	Distances []int
}

// Records returns the repeats sorted by substring.
func (r Repeats) Records() []Record {
	out := make([]Record, 0, len(r))
	for s, d := range r {
		out = append(out, Record{Substring: s, Distances: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Substring < out[j].Substring })

	return out
}

// DistanceCount returns the total number of recorded distances.
func (r Repeats) DistanceCount() int {
	n := 0
	for _, d := range r {
		n += len(d)
	}

	return n
}

// FindRepeats extracts every substring of rune length minLen..maxLen from text
// and records, for each occurrence that reappears later in the same length
// bucket, the distance to the nearest following occurrence.
//
// A text shorter than minLen, or minLen > maxLen, or minLen < 1, yields an
// empty (non-nil) result.
func FindRepeats(text string, minLen, maxLen int) Repeats {
	out := make(Repeats)
	if minLen < 1 || minLen > maxLen {
		return out
	}
	runes := []rune(text)
	n := len(runes)

	for size := minLen; size <= maxLen && size <= n; size++ {
		// last[s] is the most recent start of s; the distance from it to the
		// current start is the forward distance to its nearest successor.
		last := make(map[string]int, n-size+1)
		for i := 0; i+size <= n; i++ {
			s := string(runes[i : i+size])
			if prev, ok := last[s]; ok {
				out[s] = append(out[s], i-prev)
			}
			last[s] = i
		}
	}

	return out
}
