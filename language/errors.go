package language

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the language package. Every message carries the
// "language:" prefix; callers match them with errors.Is.
var (
	// ErrAlphabetTooSmall indicates an alphabet with fewer than two symbols.
	ErrAlphabetTooSmall = errors.New("language: alphabet needs at least two symbols")

	// ErrDuplicateSymbol indicates that a rune occurs twice in an alphabet definition.
	ErrDuplicateSymbol = errors.New("language: duplicate alphabet symbol")

	// ErrInvalidSymbol indicates a text or key symbol (or index) outside the alphabet.
	ErrInvalidSymbol = errors.New("language: symbol not in alphabet")

	// ErrFrequencyLength indicates a frequency table whose length differs from the alphabet size.
	ErrFrequencyLength = errors.New("language: frequency table length mismatch")

	// ErrBadFrequencies indicates negative or non-finite probabilities, or a sum outside tolerance.
	ErrBadFrequencies = errors.New("language: frequencies must be non-negative and sum to 1")

	// ErrInvalidRange indicates a key-length search range with min < 1 or min > max.
	ErrInvalidRange = errors.New("language: invalid key length range")
)

// ValidateRange checks a key-length search range [min, max].
// It returns an error wrapping ErrInvalidRange when min < 1 or min > max.
func ValidateRange(min, max int) error {
	if min < 1 || min > max {
		return fmt.Errorf("range [%d,%d]: %w", min, max, ErrInvalidRange)
	}

	return nil
}

// symbolError wraps ErrInvalidSymbol with the offending rune and its offset.
func symbolError(r rune, offset int) error {
	return fmt.Errorf("%q at offset %d: %w", r, offset, ErrInvalidSymbol)
}

// indexError wraps ErrInvalidSymbol for an index outside the alphabet.
func indexError(i, offset int) error {
	return fmt.Errorf("index %d at offset %d: %w", i, offset, ErrInvalidSymbol)
}

// symbolErrorDup wraps ErrDuplicateSymbol with the repeated rune.
func symbolErrorDup(r rune, offset int) error {
	return fmt.Errorf("%q at offset %d: %w", r, offset, ErrDuplicateSymbol)
}
