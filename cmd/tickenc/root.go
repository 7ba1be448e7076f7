package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/tickcodec/v1/logger"
	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
	"github.com/Aleph-Alpha/tickcodec/v1/tracer"
)

const (
	serviceName  = "tickenc"
	flushTimeout = 5 * time.Second
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	LogLevel    string
	TraceExport bool

	log    logger.Logger
	tracer *tracer.Tracer
	span   trace.Span
	codec  tickencoding.Codec
}

// Execute runs tickenc with os.Args.
func Execute() error {
	opts := &rootOptions{LogLevel: logger.Warning}
	err := newRootCmd(opts).Execute()
	opts.finish(err)
	return err
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "encode and decode binary values as TickEncoded text",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel,
		`log level: one of "debug", "info", "warning" or "error"`)
	rootCmd.PersistentFlags().BoolVar(&opts.TraceExport, "trace-export", opts.TraceExport,
		"export spans over OTLP HTTP, configured by the OTEL_EXPORTER_OTLP_* variables")

	rootCmd.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newSchemaCmd(),
		newValidateCmd(opts),
	)
	return rootCmd
}

// setup builds the logger and tracer unless they were injected, starts a
// span for the command and a codec that reports every operation to both.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.log == nil {
		o.log = logger.NewLoggerClient(logger.Config{
			Level:         o.LogLevel,
			ServiceName:   serviceName,
			EnableTracing: o.TraceExport,
		})
	}
	if o.tracer == nil && o.TraceExport {
		t, err := tracer.NewClient(tracer.Config{ServiceName: serviceName, EnableExport: true}, o.log)
		if err != nil {
			return err
		}
		o.tracer = t
	}

	log := o.log
	observers := []tickencoding.Observer{tickencoding.ObserverFunc(func(op tickencoding.OperationContext) {
		log.Debug("Codec operation", op.Error, map[string]interface{}{
			"operation": op.Operation,
			"size":      op.Size,
			"text_size": op.TextSize,
			"duration":  op.Duration.String(),
		})
	})}

	if o.tracer != nil {
		ctx, span := o.tracer.StartSpan(cmd.Context(), cmd.CommandPath())
		cmd.SetContext(ctx)
		o.span = span
		observers = append(observers, o.tracer.Observer(ctx))
	}

	o.codec = tickencoding.Codec{}.WithObserver(tickencoding.ObserverFunc(func(op tickencoding.OperationContext) {
		for _, obs := range observers {
			obs.ObserveOperation(op)
		}
	}))
	return nil
}

// finish records err on the command span, ends it and flushes the tracer.
func (o *rootOptions) finish(err error) {
	if o.span != nil {
		if err != nil {
			o.tracer.RecordErrorOnSpan(o.span, err)
		}
		o.span.End()
		o.span = nil
	}
	if o.tracer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := o.tracer.Shutdown(ctx); err != nil {
		o.log.Warn("Failed to flush spans", err, nil)
	}
}

// readInput returns the contents of the file named by args[0], or stdin
// when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("error reading file (%s): %w", args[0], err)
	}
	return data, nil
}
