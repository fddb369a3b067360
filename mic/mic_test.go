package mic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vigcrack/internal/synth"
	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/mic"
)

func encodeAll(t *testing.T, a *language.Alphabet, texts []string) [][]int {
	t.Helper()
	out := make([][]int, len(texts))
	for i, s := range texts {
		enc, err := a.Encode(s)
		require.NoError(t, err)
		out[i] = enc
	}

	return out
}

func TestShiftScores_ExactShift(t *testing.T) {
	model := language.Swedish()
	n := model.Size()
	const shift = 3

	// f_{(i+shift) mod n} = p_i: the column of a Caesar shift by 3.
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		f[(i+shift)%n] = model.Freq(i)
	}

	scores, err := mic.ShiftScores(f, model)
	require.NoError(t, err)
	require.Len(t, scores, n)

	g, best := mic.BestShift(scores)
	assert.Equal(t, shift, g)
	assert.InDelta(t, model.MaxIC(), best, 1e-12)
}

func TestShiftScores_Errors(t *testing.T) {
	_, err := mic.ShiftScores(make([]float64, 29), nil)
	assert.ErrorIs(t, err, mic.ErrNilModel)

	_, err = mic.ShiftScores(make([]float64, 3), language.Swedish())
	assert.Error(t, err)
}

func TestBestShift_TieKeepsSmallest(t *testing.T) {
	g, v := mic.BestShift([]float64{0.1, 0.3, 0.3, 0.2})
	assert.Equal(t, 1, g)
	assert.Equal(t, 0.3, v)

	g, v = mic.BestShift(nil)
	assert.Equal(t, 0, g)
	assert.Equal(t, 0.0, v)
}

func TestFrequencies(t *testing.T) {
	f, err := mic.Frequencies([][]int{{0, 1, 0, 2}, {1}}, 2, 3)
	require.NoError(t, err)

	// position 0: 0, 0, 1 ; position 1: 1, 2
	r0, _ := f.Row(0)
	r1, _ := f.Row(1)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 1.0 / 3, 0}, r0, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5}, r1, 1e-12)

	_, err = mic.Frequencies([][]int{{0, 5}}, 2, 3)
	assert.ErrorIs(t, err, language.ErrInvalidSymbol)
}

func TestRecoverKey_ConvergesOnLongText(t *testing.T) {
	model := language.Swedish()
	for _, k := range []int{1, 6, 13} {
		key := synth.Key(model, k, int64(100+k))
		ciphers, _ := synth.Corpus(model, key, []int{250 * k, 150 * k}, int64(k))
		texts := encodeAll(t, model.Alphabet(), ciphers)

		rec, err := mic.RecoverKey(context.Background(), texts, k, model)
		require.NoError(t, err)
		assert.Equal(t, key, rec.Key, "k=%d", k)
		assert.Len(t, rec.Scores, k)
		assert.InDelta(t, model.MaxIC(), rec.Confidence, 0.01)
	}
}

func TestRecoverKey_EmptyPositionIsZero(t *testing.T) {
	model := language.Swedish()
	rec, err := mic.RecoverKey(context.Background(), [][]int{{5, 5}}, 4, model, mic.WithConcurrency(1))
	require.NoError(t, err)

	assert.Equal(t, 0, rec.Key[2])
	assert.Equal(t, 0, rec.Key[3])
	assert.Equal(t, 0.0, rec.Scores[2])
}

func TestRecoverKey_Deterministic(t *testing.T) {
	model := language.Swedish()
	key := synth.Key(model, 9, 7)
	ciphers, _ := synth.Corpus(model, key, []int{700}, 2)
	texts := encodeAll(t, model.Alphabet(), ciphers)

	first, err := mic.RecoverKey(context.Background(), texts, 9, model, mic.WithConcurrency(1))
	require.NoError(t, err)
	for _, c := range []int{0, 2, 16} {
		again, err := mic.RecoverKey(context.Background(), texts, 9, model, mic.WithConcurrency(c))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRecoverKey_Errors(t *testing.T) {
	model := language.Swedish()
	ctx := context.Background()

	_, err := mic.RecoverKey(ctx, [][]int{{1}}, 3, nil)
	assert.ErrorIs(t, err, mic.ErrNilModel)

	_, err = mic.RecoverKey(ctx, [][]int{{1}}, 0, model)
	assert.ErrorIs(t, err, mic.ErrBadKeyLength)

	_, err = mic.RecoverKey(ctx, nil, 3, model)
	assert.ErrorIs(t, err, mic.ErrNoText)

	_, err = mic.RecoverKey(ctx, [][]int{{-1}}, 3, model)
	assert.ErrorIs(t, err, language.ErrInvalidSymbol)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = mic.RecoverKey(cctx, [][]int{{1, 2, 3}}, 3, model)
	assert.ErrorIs(t, err, context.Canceled)
}
