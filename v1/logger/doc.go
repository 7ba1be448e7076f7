// Package logger provides structured logging for tickcodec services and tools.
//
// The package wraps Uber's zap behind a small interface so that components
// such as the schema registry publisher and the tickenc CLI can log without
// depending on zap directly, and so tests can swap in MockLogger.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FX module: Provides both *LoggerClient and Logger interface for dependency injection
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/tickcodec/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "tickenc",
//	})
//
//	log.Info("Schema published", nil, map[string]interface{}{
//		"subject": "artifact-value",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Debug, ServiceName: "artifact-indexer"}
//		}),
//	)
//
// # Tracing Integration
//
// With EnableTracing set, the *WithContext methods add trace_id and span_id
// fields taken from the OpenTelemetry span context stored in ctx.
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_SERVICE_NAME=tickenc     # Value of the "service" field
//	LOGGER_ENABLE_TRACING=true      # Add trace/span IDs in *WithContext calls
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
