package dictionary

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrVocabularyUnavailable is returned when scoring needs a vocabulary and
// none (or an empty one) was supplied.
var ErrVocabularyUnavailable = errors.New("dictionary: vocabulary unavailable")

type node struct {
	children map[rune]*node
	word     bool
}

// Vocabulary is an immutable set of lowercase words stored as a rune trie.
// It is safe for concurrent use once built.
type Vocabulary struct {
	root   *node
	n      int
	maxLen int
	freq   map[string]float64
}

// New builds a vocabulary from words. Words are trimmed and lowercased;
// empty entries and duplicates are ignored.
func New(words []string) *Vocabulary {
	v := &Vocabulary{root: &node{}, freq: make(map[string]float64)}
	for _, w := range words {
		v.add(w, 0)
	}

	return v
}

func (v *Vocabulary) add(w string, f float64) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return
	}
	cur := v.root
	for _, r := range w {
		if cur.children == nil {
			cur.children = make(map[rune]*node)
		}
		next, ok := cur.children[r]
		if !ok {
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.word {
		cur.word = true
		v.n++
		if l := utf8.RuneCountInString(w); l > v.maxLen {
			v.maxLen = l
		}
	}
	v.freq[w] += f
}

// LoadJSON reads a JSON object mapping words to frequencies.
func LoadJSON(r io.Reader) (*Vocabulary, error) {
	var raw map[string]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("dictionary: decode vocabulary: %w", err)
	}
	v := New(nil)
	for w, f := range raw {
		v.add(w, f)
	}

	return v, nil
}

// LoadWords reads one word per line. An optional second whitespace-separated
// field is parsed as the word's frequency. Blank lines and lines starting
// with '#' are skipped.
func LoadWords(r io.Reader) (*Vocabulary, error) {
	v := New(nil)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var f float64
		if len(fields) > 1 {
			var err error
			if f, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("dictionary: line %d: %w", line, err)
			}
		}
		v.add(fields[0], f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read vocabulary: %w", err)
	}

	return v, nil
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}

	return v.n
}

// MaxWordLen returns the rune length of the longest word.
func (v *Vocabulary) MaxWordLen() int {
	if v == nil {
		return 0
	}

	return v.maxLen
}

// Contains reports whether w (lowercased) is a vocabulary word.
func (v *Vocabulary) Contains(w string) bool {
	if v == nil {
		return false
	}
	cur := v.root
	for _, r := range strings.ToLower(w) {
		next, ok := cur.children[r]
		if !ok {
			return false
		}
		cur = next
	}

	return cur.word
}

// Frequency returns the recorded frequency of w and whether w is known.
func (v *Vocabulary) Frequency(w string) (float64, bool) {
	if !v.Contains(w) {
		return 0, false
	}

	return v.freq[strings.ToLower(w)], true
}

// longestMatch returns the rune length of the longest word that is a prefix
// of text[i:], or 0.
func (v *Vocabulary) longestMatch(text []rune, i int) int {
	cur := v.root
	best := 0
	for j := i; j < len(text); j++ {
		next, ok := cur.children[text[j]]
		if !ok {
			break
		}
		cur = next
		if cur.word {
			best = j - i + 1
		}
	}

	return best
}

// Available returns ErrVocabularyUnavailable when v is nil or empty.
func (v *Vocabulary) Available() error {
	if v.Len() == 0 {
		return ErrVocabularyUnavailable
	}

	return nil
}
