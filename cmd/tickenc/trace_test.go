package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
	"github.com/Aleph-Alpha/tickcodec/v1/tracer"
)

func executeTraced(t *testing.T, stdin string, args ...string) (*tracetest.SpanRecorder, string, error) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tr, err := tracer.NewClient(tracer.Config{ServiceName: serviceName}, nil, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)

	opts := &rootOptions{LogLevel: logger.Warning, log: logger.NewNop(), tracer: tr}
	cmd := newRootCmd(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	opts.finish(err)
	return recorder, out.String(), err
}

func TestTracing_Encode(t *testing.T) {
	recorder, out, err := executeTraced(t, "\x00\x01\xff", "encode")
	require.NoError(t, err)
	assert.Equal(t, "AAH_\n", out)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "tickencoding.encode", spans[0].Name())
	assert.Equal(t, "tickenc encode", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestTracing_DecodeFailureMarksCommandSpan(t *testing.T) {
	recorder, _, err := executeTraced(t, "", "decode", "AA==")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "tickenc decode", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
