package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/vigcrack/dictionary"
	"github.com/katalvlaran/vigcrack/friedman"
	"github.com/katalvlaran/vigcrack/internal/logger"
	"github.com/katalvlaran/vigcrack/internal/metrics"
	"github.com/katalvlaran/vigcrack/kasiski"
	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/mic"
	"github.com/katalvlaran/vigcrack/vigenere"
)

// Engine runs analyses against one language model. It holds no per-run
// state and is safe for concurrent use.
type Engine struct {
	model       *language.Model
	log         *slog.Logger
	metrics     *metrics.Metrics
	concurrency int
	subMin      int
	subMax      int
}

// DecryptionResult is the plaintext recovered for one ciphertext.
type DecryptionResult struct {
	Plaintext string  `json:"plaintext"`
	Key       string  `json:"key"`
	KeyLength int     `json:"key_length"`
	Score     float64 `json:"score"`
}

// Report is the outcome of the statistical path.
type Report struct {
	MinKey       int                    `json:"min_key"`
	MaxKey       int                    `json:"max_key"`
	Candidates   []int                  `json:"candidates"`
	Fallback     bool                   `json:"fallback"`
	KeyLength    int                    `json:"key_length"`
	LengthScore  float64                `json:"length_score"`
	LengthScores []friedman.LengthScore `json:"length_scores"`
	Key          string                 `json:"key"`
	Confidence   float64                `json:"confidence"`
	Results      []DecryptionResult     `json:"results"`
	Elapsed      time.Duration          `json:"elapsed_ns"`
}

// DictionaryReport is the outcome of the dictionary path.
type DictionaryReport struct {
	MinKey  int                      `json:"min_key"`
	MaxKey  int                      `json:"max_key"`
	Scores  []dictionary.LengthScore `json:"scores"`
	Best    dictionary.LengthScore   `json:"best"`
	Results []DecryptionResult       `json:"results"`
	Elapsed time.Duration            `json:"elapsed_ns"`
}

// Agrees reports whether both paths recovered the same key.
func (r *Report) Agrees(d *DictionaryReport) bool {
	if r == nil || d == nil {
		return false
	}

	return r.Key == d.Best.Key
}

// New builds an Engine for model.
func New(model *language.Model, opts ...Option) (*Engine, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	e := &Engine{
		model:  model,
		log:    logger.Discard(),
		subMin: kasiski.KasiskiMinSubstring,
		subMax: kasiski.KasiskiMaxSubstring,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if err := language.ValidateRange(e.subMin, e.subMax); err != nil {
		return nil, fmt.Errorf("analysis: substring %w", err)
	}

	return e, nil
}

// Model returns the engine's language model.
func (e *Engine) Model() *language.Model { return e.model }

// encode validates the range and every ciphertext, and returns the effective
// upper bound. Nothing runs on failure.
//
// A key at least as long as the longest ciphertext leaves every column with
// at most one symbol, so lengths past that carry no information: max is
// clamped to the longest ciphertext (never below min). min itself may not
// exceed MaxKeyLength.
func (e *Engine) encode(ciphertexts []string, min, max int) ([][]int, int, error) {
	if err := language.ValidateRange(min, max); err != nil {
		return nil, 0, fmt.Errorf("analysis: %w", err)
	}
	if min > MaxKeyLength {
		return nil, 0, fmt.Errorf("analysis: min %d above limit %d: %w", min, MaxKeyLength, ErrInvalidRange)
	}
	if len(ciphertexts) == 0 {
		return nil, 0, ErrEmptyInput
	}
	a := e.model.Alphabet()
	out := make([][]int, len(ciphertexts))
	longest := 0
	for i, c := range ciphertexts {
		enc, err := a.Encode(c)
		if err != nil {
			return nil, 0, fmt.Errorf("analysis: ciphertext %d: %w", i, err)
		}
		out[i] = enc
		if len(enc) > longest {
			longest = len(enc)
		}
	}
	if max > longest {
		max = longest
	}
	if max < min {
		max = min
	}

	return out, max, nil
}

func (e *Engine) stage(ctx context.Context, name string, start time.Time) {
	d := time.Since(start)
	e.metrics.ObserveStage(name, d)
	e.log.DebugContext(ctx, "stage finished", "stage", name, "duration_ms", d.Milliseconds())
}

// decryptAll applies key to every encoded text.
func (e *Engine) decryptAll(texts [][]int, key []int, score float64) ([]DecryptionResult, string, error) {
	a := e.model.Alphabet()
	keyStr, err := a.Decode(key)
	if err != nil {
		return nil, "", fmt.Errorf("analysis: key: %w", err)
	}
	out := make([]DecryptionResult, len(texts))
	for i, t := range texts {
		plain, err := a.Decode(vigenere.DecryptIndices(t, key, a.Size()))
		if err != nil {
			return nil, "", fmt.Errorf("analysis: ciphertext %d: %w", i, err)
		}
		out[i] = DecryptionResult{Plaintext: plain, Key: keyStr, KeyLength: len(key), Score: score}
	}

	return out, keyStr, nil
}

// Analyze runs the statistical path over ciphertexts with key lengths in
// [min, max]. max is clamped to the longest ciphertext; Report.MaxKey holds
// the bound actually searched.
func (e *Engine) Analyze(ctx context.Context, ciphertexts []string, min, max int) (rep *Report, err error) {
	start := time.Now()
	defer func() { e.metrics.IncrementRun(metrics.ModeStatistical, err) }()

	texts, max, err := e.encode(ciphertexts, min, max)
	if err != nil {
		return nil, err
	}

	t := time.Now()
	kas, err := kasiski.CandidatesWithin(ciphertexts, min, max, e.subMin, e.subMax)
	if err != nil {
		return nil, err
	}
	e.stage(ctx, metrics.StageKasiski, t)
	if kas.Empty() {
		e.metrics.IncrementFallback()
		e.log.InfoContext(ctx, "no kasiski candidates in range, scanning all lengths",
			"min_key", min, "max_key", max, "distances", kas.Distances)
	}

	t = time.Now()
	sel, err := friedman.Select(ctx, texts, e.model, min, max, kas.Candidates,
		friedman.WithConcurrency(e.concurrency))
	if err != nil {
		return nil, err
	}
	e.stage(ctx, metrics.StageFriedman, t)

	t = time.Now()
	rec, err := mic.RecoverKey(ctx, texts, sel.Length, e.model, mic.WithConcurrency(e.concurrency))
	if err != nil {
		return nil, err
	}
	e.stage(ctx, metrics.StageRecovery, t)

	t = time.Now()
	results, key, err := e.decryptAll(texts, rec.Key, rec.Confidence)
	if err != nil {
		return nil, err
	}
	e.stage(ctx, metrics.StageDecrypt, t)
	e.metrics.ObserveKeyLength(sel.Length)

	rep = &Report{
		MinKey:       min,
		MaxKey:       max,
		Candidates:   kas.Candidates,
		Fallback:     kas.Empty(),
		KeyLength:    sel.Length,
		LengthScore:  sel.Score,
		LengthScores: sel.Scores,
		Key:          key,
		Confidence:   rec.Confidence,
		Results:      results,
		Elapsed:      time.Since(start),
	}
	e.log.InfoContext(ctx, "analysis finished",
		"texts", len(texts),
		"key_length", rep.KeyLength,
		"fallback", rep.Fallback,
		"confidence", rep.Confidence,
		"duration_ms", rep.Elapsed.Milliseconds(),
	)

	return rep, nil
}

// AnalyzeDictionary runs the dictionary path over every key length in
// [min, max], with max clamped as in Analyze. A nil or empty vocab fails
// with ErrVocabularyUnavailable.
func (e *Engine) AnalyzeDictionary(ctx context.Context, ciphertexts []string, min, max int, vocab *dictionary.Vocabulary) (rep *DictionaryReport, err error) {
	start := time.Now()
	defer func() { e.metrics.IncrementRun(metrics.ModeDictionary, err) }()

	if err := vocab.Available(); err != nil {
		return nil, err
	}
	texts, max, err := e.encode(ciphertexts, min, max)
	if err != nil {
		return nil, err
	}

	t := time.Now()
	scores, err := dictionary.ScoreLengths(ctx, texts, e.model, vocab, min, max,
		dictionary.WithConcurrency(e.concurrency))
	if err != nil {
		return nil, err
	}
	e.stage(ctx, metrics.StageDictionary, t)

	best, _ := dictionary.Best(scores)
	key, err := e.model.Alphabet().Encode(best.Key)
	if err != nil {
		return nil, fmt.Errorf("analysis: key: %w", err)
	}
	results, _, err := e.decryptAll(texts, key, float64(best.Score))
	if err != nil {
		return nil, err
	}
	e.metrics.ObserveKeyLength(best.Length)

	rep = &DictionaryReport{
		MinKey:  min,
		MaxKey:  max,
		Scores:  scores,
		Best:    best,
		Results: results,
		Elapsed: time.Since(start),
	}
	e.log.InfoContext(ctx, "dictionary analysis finished",
		"texts", len(texts),
		"key_length", best.Length,
		"score", best.Score,
		"duration_ms", rep.Elapsed.Milliseconds(),
	)

	return rep, nil
}
