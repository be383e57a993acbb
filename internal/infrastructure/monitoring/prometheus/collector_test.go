package prometheus

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "condrec"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestNewMetricsCollectorRequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestRegisterIsIdempotentPerName(t *testing.T) {
	c := newTestCollector(t)

	first := c.RegisterCounter("recommendations_total", "Served recommendations", "reaction_type")
	second := c.RegisterCounter("recommendations_total", "Served recommendations", "reaction_type")

	first.WithLabelValues("Suzuki").Inc()
	second.WithLabelValues("Suzuki").Inc()
	// Both handles feed one underlying series; exposure must not panic on
	// duplicate registration.
	assert.NotNil(t, second)
}

func TestHandlerExposesRegisteredMetrics(t *testing.T) {
	c := newTestCollector(t)
	counter := c.RegisterCounter("aggregation_runs_total", "Evidence aggregation runs", "reaction_type", "status")
	counter.WithLabelValues("Ullmann", "success").Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "condrec_aggregation_runs_total")
	assert.Contains(t, rec.Body.String(), `reaction_type="Ullmann"`)
}

func TestConflictingRegistrationDegradesToNoop(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("cache_hits_total", "Cache hits", "cache")

	// Same name, different type: the registry rejects it and the caller
	// gets a usable no-op instead of a panic.
	g := c.RegisterGauge("cache_hits_total", "Cache hits", "cache")
	assert.NotPanics(t, func() {
		g.WithLabelValues("recommendation").Set(1)
	})
}

func TestTimerObservesElapsed(t *testing.T) {
	c := newTestCollector(t)
	hist := c.RegisterHistogram("recommendation_duration_seconds", "duration", DefaultHTTPDurationBuckets, "reaction_type")

	timer := NewTimer(hist.WithLabelValues("Suzuki"))
	time.Sleep(time.Millisecond)
	assert.NotPanics(t, timer.ObserveDuration)

	var nilTimer = NewTimer(nil)
	assert.NotPanics(t, nilTimer.ObserveDuration)
}
