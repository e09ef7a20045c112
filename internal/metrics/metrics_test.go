package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegisterer(registry)

	m.ObserveRequest(http.MethodGet, "/api/pizzas", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/pizzas", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/pizzas/:id", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/pizzas", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/pizzas/:id", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestRecordPriceUpdate(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegisterer(registry)

	m.RecordPriceUpdate(OutcomeNotificationFailed)
	m.RecordPriceUpdate(OutcomeNotificationFailed)
	m.RecordPriceUpdate(OutcomeNotificationSent)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.priceUpdates.WithLabelValues(OutcomeNotificationFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.priceUpdates.WithLabelValues(OutcomeNotificationSent)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.priceUpdates.WithLabelValues(OutcomeStorageFailed)))
}

func TestNewWithRegistererReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewWithRegisterer(registry)
	second := NewWithRegisterer(registry)

	first.RecordPriceUpdate(OutcomeRejected)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.priceUpdates.WithLabelValues(OutcomeRejected)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.RecordPriceUpdate(OutcomeNotificationSent)
	})
}
