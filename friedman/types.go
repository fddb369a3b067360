package friedman

import (
	"errors"
	"runtime"
)

var (
	// ErrNilModel is returned when Select is called without a language model.
	ErrNilModel = errors.New("friedman: nil language model")

	// ErrNoText is returned when Select receives zero texts.
	ErrNoText = errors.New("friedman: no ciphertext supplied")
)

// LengthScore is the coincidence summary of one key length.
type LengthScore struct {
	Length   int     `json:"length"`   // key length m
	MeanIC   float64 `json:"mean_ic"`  // mean index of coincidence over the m columns
	Distance float64 `json:"distance"` // (MeanIC − MaxIC)²
}

// Selection is the outcome of Select.
type Selection struct {
	Length     int           // chosen key length
	Score      float64       // MeanIC of the chosen length
	Distance   float64       // squared distance of Score to the model's MaxIC
	Scores     []LengthScore // every scored length, ascending
	Exhaustive bool          // true when the whole range was scanned
}

// Options configures Select.
//
// Concurrency – maximum number of lengths scored at once; ≤ 0 means GOMAXPROCS.
type Options struct {
	Concurrency int
}

// Option represents a functional option for configuring Select.
type Option func(*Options)

// WithConcurrency bounds the number of lengths scored in parallel.
// Values ≤ 0 restore the default (GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// DefaultOptions returns Options with Concurrency = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Concurrency: runtime.GOMAXPROCS(0)}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}
