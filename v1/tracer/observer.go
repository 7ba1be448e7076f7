package tracer

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

// Span attribute keys set on codec operation spans.
const (
	AttrOperation = "tickencoding.operation"
	AttrSize      = "tickencoding.size"
	AttrTextSize  = "tickencoding.text_size"
)

// Observer returns a tickencoding.Observer that records every codec
// operation as a span. Spans are children of the span in ctx, if any, and
// cover the measured duration of the operation.
//
// Example:
//
//	codec := tickencoding.Codec{}.WithObserver(tracerClient.Observer(ctx))
func (t *Tracer) Observer(ctx context.Context) tickencoding.Observer {
	return tickencoding.ObserverFunc(func(op tickencoding.OperationContext) {
		end := time.Now()
		_, span := t.StartSpan(ctx, "tickencoding."+op.Operation,
			traceSpan.WithTimestamp(end.Add(-op.Duration)),
			traceSpan.WithSpanKind(traceSpan.SpanKindInternal),
		)
		t.SetAttributes(span, map[string]interface{}{
			AttrOperation: op.Operation,
			AttrSize:      op.Size,
			AttrTextSize:  op.TextSize,
		})
		if op.Error != nil {
			t.RecordErrorOnSpan(span, op.Error)
		}
		span.End(traceSpan.WithTimestamp(end))
	})
}
