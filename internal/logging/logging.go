// Package logging provides structured logging for the ecoimpact CLI and
// engine, built on zerolog. Loggers travel on the context so that every
// component can emit correlated, levelled events without global state.
package logging

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects the output encoding: "console" for human-readable
	// output or "json" for machine-readable output.
	Format string

	// Output selects the destination: "stderr", "stdout", or "file".
	Output string

	// File is the log file path, used when Output is "file".
	File string

	// Caller adds the calling file:line to each event when true.
	Caller bool
}

// New builds a zerolog.Logger from cfg. When Output is "file" the file is
// opened in append mode; open failures fall back to stderr so the CLI never
// loses log output entirely.
func New(cfg Config) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	w, err := resolveWriter(cfg)
	if err != nil {
		w = os.Stderr
	}

	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}

	return logCtx.Logger(), err
}

// resolveWriter maps cfg.Output to an io.Writer.
func resolveWriter(cfg Config) (io.Writer, error) {
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "file":
		if cfg.File == "" {
			return os.Stderr, fmt.Errorf("log output is file but no path configured")
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return os.Stderr, fmt.Errorf("opening log file: %w", err)
		}
		return f, nil
	default:
		return os.Stderr, fmt.Errorf("unknown log output %q", cfg.Output)
	}
}

// ComponentLogger returns a child logger tagged with a component name.
// Components use stable lowercase names ("cli", "engine", "ingest").
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger if
// none was attached. The returned pointer is never nil.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// traceIDKey is the context key for the per-invocation trace ID.
type traceIDKey struct{}

// ContextWithTraceID attaches a trace ID to ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID attached to ctx, or "" if absent.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID from ctx, generating a fresh
// ULID when none is present. ULIDs sort chronologically, which keeps log
// correlation cheap across concurrent assessments.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}

	entropy := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // trace IDs are not security sensitive
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
