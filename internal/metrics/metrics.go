// Package metrics exposes Prometheus instruments for analysis runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage labels for StageDuration.
const (
	StageKasiski    = "kasiski"
	StageFriedman   = "friedman"
	StageRecovery   = "recovery"
	StageDecrypt    = "decrypt"
	StageDictionary = "dictionary"
)

// Mode labels for Runs.
const (
	ModeStatistical = "statistical"
	ModeDictionary  = "dictionary"
)

// Metrics provides observability for the analysis engine.
type Metrics struct {
	// Analysis runs by mode and outcome
	Runs *prometheus.CounterVec

	// Stage latencies
	StageDuration *prometheus.HistogramVec

	// Runs where Kasiski produced no candidate in range
	KasiskiFallbacks prometheus.Counter

	// Chosen key lengths
	KeyLength prometheus.Histogram

	// Report cache lookups by result
	CacheLookups *prometheus.CounterVec
}

// New registers all instruments on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vigcrack_analysis_runs_total",
			Help: "Total analysis runs by mode and outcome",
		}, []string{"mode", "outcome"}), // outcome: "ok", "error"

		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vigcrack_stage_duration_seconds",
			Help:    "Duration of analysis stages",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"stage"}),

		KasiskiFallbacks: f.NewCounter(prometheus.CounterOpts{
			Name: "vigcrack_kasiski_fallbacks_total",
			Help: "Runs that fell back to an exhaustive key length scan",
		}),

		KeyLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigcrack_key_length",
			Help:    "Chosen key lengths",
			Buckets: []float64{2, 5, 10, 25, 50, 100, 150, 200, 250, 500},
		}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vigcrack_cache_lookups_total",
			Help: "Report cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

// ObserveStage records the duration of one stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncrementRun records a finished run.
func (m *Metrics) IncrementRun(mode string, err error) {
	if m != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		m.Runs.WithLabelValues(mode, outcome).Inc()
	}
}

// IncrementFallback records an exhaustive scan.
func (m *Metrics) IncrementFallback() {
	if m != nil {
		m.KasiskiFallbacks.Inc()
	}
}

// ObserveKeyLength records the chosen key length.
func (m *Metrics) ObserveKeyLength(n int) {
	if m != nil {
		m.KeyLength.Observe(float64(n))
	}
}

// IncrementCache records a cache lookup result.
func (m *Metrics) IncrementCache(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}
