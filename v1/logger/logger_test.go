package logger

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level, tracing bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewFromZap(zap.New(core), tracing), logs
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel(Debug))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(Info))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(Warning))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel(Error))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
}

func TestLoggerClient_FieldsAndError(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel, false)

	log.Info("decoded", errors.New("boom"), map[string]interface{}{"size": 3}, map[string]interface{}{"size": 4, "kind": "digest"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "decoded", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "boom", ctx["error"])
	assert.EqualValues(t, 4, ctx["size"], "later maps override earlier ones")
	assert.Equal(t, "digest", ctx["kind"])
}

func TestLoggerClient_Levels(t *testing.T) {
	log, logs := newObserved(zapcore.WarnLevel, false)

	log.Debug("d", nil)
	log.Info("i", nil)
	log.Warn("w", nil)
	log.Error("e", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "w", entries[0].Message)
	assert.Equal(t, "e", entries[1].Message)
}

func TestLoggerClient_TraceFields(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	t.Run("enabled", func(t *testing.T) {
		log, logs := newObserved(zapcore.DebugLevel, true)
		log.InfoWithContext(ctx, "with trace", nil)

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})

	t.Run("disabled", func(t *testing.T) {
		log, logs := newObserved(zapcore.DebugLevel, false)
		log.ErrorWithContext(ctx, "no trace", nil)

		assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
	})

	t.Run("no span", func(t *testing.T) {
		log, logs := newObserved(zapcore.DebugLevel, true)
		log.WarnWithContext(context.Background(), "no span", nil)
		log.DebugWithContext(context.Background(), "no span", nil)

		for _, e := range logs.All() {
			assert.NotContains(t, e.ContextMap(), "span_id")
		}
	})
}

func TestNewLoggerClient(t *testing.T) {
	log := NewLoggerClient(Config{Level: Debug, ServiceName: "tickenc-test"})
	require.NotNil(t, log.Zap)
	assert.True(t, log.Zap.Core().Enabled(zapcore.DebugLevel))

	log = NewLoggerClient(Config{Level: Error, Development: true})
	assert.False(t, log.Zap.Core().Enabled(zapcore.WarnLevel))
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Info("discarded", nil, map[string]interface{}{"k": "v"})
	})
}

func TestFXModule(t *testing.T) {
	var (
		client *LoggerClient
		iface  Logger
	)

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return Config{Level: Warning} }),
		fx.Populate(&client, &iface),
	)
	app.RequireStart()
	app.RequireStop()

	require.NotNil(t, client)
	assert.Same(t, client, iface)
}

// syncer is a WriteSyncer whose Sync fails with err.
type syncer struct {
	err error
}

func (s syncer) Write(p []byte) (int, error) { return io.Discard.Write(p) }

func (s syncer) Sync() error { return s.err }

func newSyncing(err error) *LoggerClient {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), syncer{err: err}, zapcore.InfoLevel)
	return NewFromZap(zap.New(core), false)
}

func TestRegisterLoggerLifecycle_SyncErrors(t *testing.T) {
	diskFull := errors.New("write /var/log/app.log: no space left on device")

	tests := []struct {
		name    string
		syncErr error
		wantErr error
	}{
		{name: "flushed", syncErr: nil, wantErr: nil},
		{name: "terminal", syncErr: &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}, wantErr: nil},
		{name: "pipe", syncErr: &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}, wantErr: nil},
		{name: "real failure", syncErr: diskFull, wantErr: diskFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			RegisterLoggerLifecycle(lc, newSyncing(tt.syncErr))

			require.NoError(t, lc.Start(context.Background()))
			err := lc.Stop(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
