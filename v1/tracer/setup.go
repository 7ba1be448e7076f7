package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
)

const instrumentationName = "github.com/Aleph-Alpha/tickcodec/v1/tracer"

// Tracer wraps an OpenTelemetry TracerProvider. It creates spans for codec
// operations and moves trace context in and out of text carriers.
//
// The Tracer is safe for concurrent use.
type Tracer struct {
	tracer *trace.TracerProvider
	logger logger.Logger
}

// NewClient creates a Tracer and installs it as the global OpenTelemetry
// provider together with the W3C trace context and baggage propagators.
//
// Extra provider options are appended after the exporter and resource, e.g.
// trace.WithSpanProcessor for an in-memory recorder in tests.
//
// Example:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "tickenc",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer tracerClient.Shutdown(ctx)
func NewClient(cfg Config, log logger.Logger, opts ...trace.TracerProviderOption) (*Tracer, error) {
	if log == nil {
		log = logger.NewNop()
	}

	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			log.Error("cannot initiate tracer", err, nil)
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))
	options = append(options, opts...)

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Debug("Tracer initialized", nil, map[string]interface{}{
		"service":  cfg.ServiceName,
		"env":      cfg.AppEnv,
		"exporter": cfg.EnableExport,
	})
	return &Tracer{tracer: tp, logger: log}, nil
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.tracer == nil {
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
