package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

const subsystem = "tickencoding"

// ObserveOperation records one codec operation. It makes *Metrics usable as
// a tickencoding.Observer:
//
//	codec := tickencoding.Codec{}.WithObserver(m)
func (m *Metrics) ObserveOperation(ctx tickencoding.OperationContext) {
	m.operationsTotal.WithLabelValues(ctx.Operation, statusOf(ctx.Error)).Inc()
	m.durationSeconds.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Error == nil {
		m.payloadBytes.WithLabelValues(ctx.Operation).Observe(float64(ctx.Size))
	}
}

// statusOf maps an operation error to the status label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case tickencoding.IsEncodingMalformed(err):
		return StatusMalformed
	case tickencoding.IsTargetConversion(err):
		return StatusConversionFailed
	default:
		return StatusError
	}
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      name,
		Help:      help,
	}, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
	m.registerer.MustRegister(hist)
	return hist
}

// createCounterVec defines a codec CounterVec under the tickencoding subsystem.
func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// createHistogramVec defines a codec HistogramVec under the tickencoding subsystem.
func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
