// Package metrics exposes Prometheus metrics for tickencoding codecs.
//
// A *Metrics value implements tickencoding.Observer, so attaching it to a
// Codec is enough to count encode and decode calls, classify failures and
// track payload sizes:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "artifact-indexer",
//	})
//	codec := tickencoding.Codec{}.WithObserver(m)
//	go m.Server.ListenAndServe()
//
// # Exposed Metrics
//
//	tickencoding_operations_total{operation="encode|decode",status="success|malformed|conversion_failed|error"}
//	tickencoding_payload_bytes{operation}                  histogram of raw byte sizes
//	tickencoding_operation_duration_seconds{operation}     histogram of call durations
//
// Every metric carries a constant service label and, when Namespace is set,
// a name prefix.
//
// # FX Module Integration
//
// FXModule provides *Metrics, MetricsCollector and tickencoding.Observer, and
// runs the /metrics server for the lifetime of the application.
//
// # Configuration
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//	METRICS_NAMESPACE=artifacts                # Optional prefix for all metric names
//	METRICS_SERVICE_NAME=artifact-indexer      # Adds service label to all metrics
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
