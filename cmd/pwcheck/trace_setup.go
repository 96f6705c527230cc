package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pwcheck/internal/trace"
)

// tracing holds the tracer of the running command between
// setupTracing and finishTracing.
var tracing struct {
	tracer trace.Tracer
	format trace.Format
	span   *trace.Span
}

// setupTracing reads the trace flags, creates the tracer, attaches it to
// the command context and opens the command span.
func setupTracing(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace without a level means "show me the commands"
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelInfo
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	if format == trace.FormatAuto {
		format = trace.FormatText
	}

	span := trace.Begin(tracer, trace.ScopeCommand, cmd.Name(), 0)
	ctx := trace.WithSpan(trace.WithTracer(cmd.Context(), tracer), span)
	cmd.SetContext(ctx)

	tracing.tracer = tracer
	tracing.format = format
	tracing.span = span
	return nil
}

// finishTracing closes the command span, dumps the ring buffer to stderr
// when the command failed, and closes the tracer.
func finishTracing(cmd *cobra.Command, cmdErr error) {
	tracer := tracing.tracer
	if tracer == nil {
		return
	}
	if cmdErr != nil {
		tracing.span.Fail(cmdErr)
		if ring, ok := trace.Ring(tracer); ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "trace: last events before failure:")
			if err := ring.Dump(cmd.ErrOrStderr(), tracing.format); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
	} else {
		tracing.span.End("")
	}

	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
	tracing.tracer = nil
}
