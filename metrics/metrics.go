// Package metrics exposes optional Prometheus instrumentation for the
// decode pipeline. It follows the teacher pack's promauto.With(reg)
// registration style and badgerMetrics's nil-safe Record* methods, so a
// library caller who never constructs a Metrics value pays nothing and
// observes nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the Prometheus-backed instrumentation for one decode
// pipeline instance. A nil *Metrics is valid and every method on it is a
// no-op, matching dittofs's badgerMetrics pattern.
type Metrics struct {
	decodeTotal              *prometheus.CounterVec
	decodeBytes              prometheus.Histogram
	unknownFieldsTotal       prometheus.Counter
	dimensionResolveErrTotal *prometheus.CounterVec
}

// New registers a Metrics instance's collectors against reg. Passing
// prometheus.NewRegistry() isolates instrumentation per decoder instance;
// passing prometheus.DefaultRegisterer matches typical single-process use.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		decodeTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ncstream_decode_total",
				Help: "Total decode attempts by result",
			},
			[]string{"result"}, // "ok", "error"
		),
		decodeBytes: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ncstream_decode_bytes",
				Help:    "Size in bytes of decoded header frames",
				Buckets: prometheus.ExponentialBuckets(64, 4, 10),
			},
		),
		unknownFieldsTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "ncstream_unknown_fields_total",
				Help: "Total unknown field numbers skipped during message decode",
			},
		),
		dimensionResolveErrTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ncstream_dimension_resolve_errors_total",
				Help: "Total dimension reference resolution failures by reason",
			},
			[]string{"reason"}, // "invalid_coords", "unresolved"
		),
	}
}

// RecordDecode records one decode attempt's outcome and input size.
func (m *Metrics) RecordDecode(result string, sizeBytes int) {
	if m == nil {
		return
	}
	m.decodeTotal.WithLabelValues(result).Inc()
	m.decodeBytes.Observe(float64(sizeBytes))
}

// RecordUnknownField records n unknown-field-number skips (§4.10) observed
// over the course of one decode.
func (m *Metrics) RecordUnknownField(n int) {
	if m == nil || n == 0 {
		return
	}
	m.unknownFieldsTotal.Add(float64(n))
}

// RecordDimensionResolveError records one dimension resolution failure.
func (m *Metrics) RecordDimensionResolveError(reason string) {
	if m == nil {
		return
	}
	m.dimensionResolveErrTotal.WithLabelValues(reason).Inc()
}
