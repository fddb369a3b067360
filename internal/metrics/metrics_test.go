package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vigcrack/internal/metrics"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.IncrementRun(metrics.ModeStatistical, nil)
	m.IncrementRun(metrics.ModeStatistical, errors.New("boom"))
	m.IncrementFallback()
	m.ObserveKeyLength(7)
	m.ObserveStage(metrics.StageKasiski, 3*time.Millisecond)
	m.IncrementCache("hit")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.ModeStatistical, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.ModeStatistical, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KasiskiFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))

	n, err := testutil.GatherAndCount(reg, "vigcrack_stage_duration_seconds", "vigcrack_key_length")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncrementRun(metrics.ModeDictionary, nil)
		m.IncrementFallback()
		m.ObserveKeyLength(3)
		m.ObserveStage(metrics.StageDecrypt, time.Second)
		m.IncrementCache("miss")
	})
}
