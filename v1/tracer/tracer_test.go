package tracer

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	traceSpan "go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/tickcodec/v1/carrier"
	"github.com/Aleph-Alpha/tickcodec/v1/logger"
	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

func newRecordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tr, err := NewClient(Config{ServiceName: "tickenc-test", AppEnv: "test"}, nil, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr, recorder
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestObserver_RecordsCodecSpans(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	ctx, parent := tr.StartSpan(t.Context(), "store-artifact")
	codec := tickencoding.Codec{}.WithObserver(tr.Observer(ctx))

	text := codec.EncodeBytes([]byte{0x00, 0x01, 0xFF})
	_, err := codec.DecodeBytes([]byte(text))
	require.NoError(t, err)
	_, err = codec.DecodeBytes([]byte("!not-valid!"))
	require.Error(t, err)
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 4)

	encode := spans[0]
	assert.Equal(t, "tickencoding.encode", encode.Name())
	assert.Equal(t, parent.SpanContext().SpanID(), encode.Parent().SpanID())
	attrs := attrMap(encode.Attributes())
	assert.Equal(t, "encode", attrs[AttrOperation].AsString())
	assert.EqualValues(t, 3, attrs[AttrSize].AsInt64())
	assert.EqualValues(t, 4, attrs[AttrTextSize].AsInt64())
	assert.False(t, encode.EndTime().Before(encode.StartTime()))

	assert.Equal(t, "tickencoding.decode", spans[1].Name())
	assert.Equal(t, codes.Unset, spans[1].Status().Code)

	failed := spans[2]
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, "illegal base64 data at input byte 0", failed.Status().Description)
	require.Len(t, failed.Events(), 1)
	assert.Equal(t, "exception", failed.Events()[0].Name)

	assert.Equal(t, "store-artifact", spans[3].Name())
}

func TestSetAttributes(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	_, span := tr.StartSpan(t.Context(), "attrs")
	tr.SetAttributes(span, map[string]interface{}{
		"s": "v",
		"i": 1,
		"l": int64(2),
		"f": 1.5,
		"b": true,
		"o": []int{1},
	})
	tr.SetAttributes(span, nil)
	span.End()

	attrs := attrMap(recorder.Ended()[0].Attributes())
	assert.Equal(t, "v", attrs["s"].AsString())
	assert.EqualValues(t, 1, attrs["i"].AsInt64())
	assert.EqualValues(t, 2, attrs["l"].AsInt64())
	assert.InDelta(t, 1.5, attrs["f"].AsFloat64(), 0)
	assert.True(t, attrs["b"].AsBool())
	assert.Equal(t, "[1]", attrs["o"].AsString())
}

func TestCarrierPropagation(t *testing.T) {
	tr, _ := newRecordingTracer(t)

	ctx, span := tr.StartSpan(t.Context(), "send")
	defer span.End()

	m := tr.GetCarrier(ctx)
	require.Contains(t, m, "traceparent")

	got := tr.SetCarrierOnContext(context.Background(), m)
	assert.Equal(t, span.SpanContext().TraceID(), spanContextOf(got).TraceID())

	h := http.Header{}
	tr.InjectHeader(ctx, h)
	carrier.SetHeader(h, "X-Content-Digest", tickencoding.Bytes{0x00, 0x01, 0xFF})

	received := tr.ExtractHeader(context.Background(), h)
	assert.Equal(t, span.SpanContext().TraceID(), spanContextOf(received).TraceID())

	var digest tickencoding.Bytes
	require.NoError(t, carrier.Header(h, "X-Content-Digest", &digest))
	assert.Equal(t, tickencoding.Bytes{0x00, 0x01, 0xFF}, digest)
}

func TestTracingLoggerFields(t *testing.T) {
	tr, _ := newRecordingTracer(t)
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core), true)

	ctx, span := tr.StartSpan(t.Context(), "log")
	log.InfoWithContext(ctx, "inside span", nil, nil)
	span.End()

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, span.SpanContext().TraceID().String(), entries[0].ContextMap()["trace_id"])
}

func TestShutdown_Nil(t *testing.T) {
	var tr *Tracer
	assert.NoError(t, tr.Shutdown(t.Context()))
}

func TestFXModule(t *testing.T) {
	var tr *Tracer
	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{ServiceName: "tickenc-test"}),
		fx.Provide(func() logger.Logger { return logger.NewNop() }),
		fx.Populate(&tr),
	)
	app.RequireStart()
	require.NotNil(t, tr)
	app.RequireStop()
}

func spanContextOf(ctx context.Context) traceSpan.SpanContext {
	return traceSpan.SpanContextFromContext(ctx)
}
