package analysis

import (
	"log/slog"

	"github.com/katalvlaran/vigcrack/internal/metrics"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics attaches Prometheus instruments.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithConcurrency bounds every fan-out stage; ≤ 0 means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// WithSubstringRange sets the Kasiski substring bounds (default 4..24).
func WithSubstringRange(min, max int) Option {
	return func(e *Engine) {
		e.subMin, e.subMax = min, max
	}
}
