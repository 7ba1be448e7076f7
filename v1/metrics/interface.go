package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// MetricsCollector records codec activity and lets callers add their own
// metrics to the same registry.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	tickencoding.Observer

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec
}

var _ MetricsCollector = (*Metrics)(nil)
