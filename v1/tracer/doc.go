// Package tracer provides distributed tracing for codec operations using
// OpenTelemetry.
//
// Core Features:
//   - Span creation with error recording and typed attributes
//   - A tickencoding.Observer that records each encode and decode as a span
//   - W3C trace context propagation through maps and HTTP headers
//   - Optional OTLP HTTP export
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/tickcodec/v1/tracer"
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "tickenc",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer tracerClient.Shutdown(ctx)
//
//	ctx, span := tracerClient.StartSpan(ctx, "store-artifact")
//	defer span.End()
//
//	codec := tickencoding.Codec{}.WithObserver(tracerClient.Observer(ctx))
//
// Distributed Tracing Across Services:
//
//	// In the sending service
//	tracerClient.InjectHeader(ctx, req.Header)
//	carrier.SetHeader(req.Header, "X-Content-Digest", digest)
//
//	// In the receiving service
//	ctx := tracerClient.ExtractHeader(r.Context(), r.Header)
//
// When the logger is configured with EnableTracing, the *WithContext log
// methods attach the trace_id and span_id of spans created here.
package tracer
