package analysis

import (
	"errors"

	"github.com/katalvlaran/vigcrack/dictionary"
	"github.com/katalvlaran/vigcrack/language"
)

// MaxKeyLength is the largest minimum key length the engine accepts.
const MaxKeyLength = 1 << 16

// Errors surfaced by the engine. Stage packages wrap the same values, so a
// single errors.Is against these covers every stage.
var (
	ErrInvalidSymbol         = language.ErrInvalidSymbol
	ErrInvalidRange          = language.ErrInvalidRange
	ErrVocabularyUnavailable = dictionary.ErrVocabularyUnavailable

	// ErrEmptyInput is returned when no ciphertext is supplied.
	ErrEmptyInput = errors.New("analysis: no ciphertext supplied")

	// ErrNilModel is returned by New without a language model.
	ErrNilModel = errors.New("analysis: nil language model")
)
