package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values of the operations counter.
const (
	StatusSuccess          = "success"
	StatusMalformed        = "malformed"
	StatusConversionFailed = "conversion_failed"
	StatusError            = "error"
)

// payloadBuckets covers a few bytes up to one MiB.
var payloadBuckets = prometheus.ExponentialBuckets(8, 4, 9)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing codec metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	operationsTotal *prometheus.CounterVec
	payloadBytes    *prometheus.HistogramVec
	durationSeconds *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the codec metrics,
// wraps all metrics with a constant `service` label, and creates an HTTP server
// exposing the /metrics endpoint.
//
// The codec metrics are:
//   - <ns>_tickencoding_operations_total{operation,status}
//   - <ns>_tickencoding_payload_bytes{operation}
//   - <ns>_tickencoding_operation_duration_seconds{operation}
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "artifact-indexer"})
//	codec := tickencoding.Codec{}.WithObserver(m)
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}

	registry := prometheus.NewRegistry()

	// All metrics emitted by this service carry service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
	}

	m.operationsTotal = createCounterVec(cfg.Namespace, "operations_total",
		"Total number of tickencoding operations by result", []string{"operation", "status"})
	m.payloadBytes = createHistogramVec(cfg.Namespace, "payload_bytes",
		"Size of raw byte payloads passed through the codec", []string{"operation"}, payloadBuckets)
	m.durationSeconds = createHistogramVec(cfg.Namespace, "operation_duration_seconds",
		"Duration of tickencoding operations in seconds", []string{"operation"}, prometheus.ExponentialBuckets(1e-7, 10, 7))

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.payloadBytes,
		m.durationSeconds,
	)

	// Register standard collectors if enabled.
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}

// Handler serves the metrics of this instance in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
