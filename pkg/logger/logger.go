package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names attached by the With* helpers. Controllers and middleware
// read nothing back out of the context; the logger owns these keys.
const (
	fieldRequestID = "request_id"
	fieldProfileID = "profile_id"
	fieldStoreID   = "store_id"
	fieldRole      = "role"
)

// Options configures the structured logger.
type Options struct {
	ServiceName string
	Level       zerolog.Level
	WarnStack   bool
	Output      io.Writer
}

// Logger wraps zerolog and carries request-scoped fields through context.
// The zero value is not usable; construct with New.
type Logger struct {
	base      *zerolog.Logger
	warnStack bool
}

type entryKey struct{}

func New(opts Options) *Logger {
	level := opts.Level
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	// LOG_FORMAT=console switches to the human-readable writer for local runs.
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	base := zerolog.New(out).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(level)

	return &Logger{base: &base, warnStack: opts.WarnStack}
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// WithField returns a context whose log entries carry key=value.
func (l *Logger) WithField(ctx context.Context, key string, value any) context.Context {
	return l.WithFields(ctx, map[string]any{key: value})
}

// WithFields returns a context whose log entries carry all given fields.
func (l *Logger) WithFields(ctx context.Context, fields map[string]any) context.Context {
	builder := l.entry(ctx).With()
	for k, v := range fields {
		builder = builder.Interface(k, v)
	}
	scoped := builder.Logger()
	return context.WithValue(ctx, entryKey{}, &scoped)
}

func (l *Logger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return l.WithField(ctx, fieldRequestID, requestID)
}

func (l *Logger) WithProfileID(ctx context.Context, profileID string) context.Context {
	return l.WithField(ctx, fieldProfileID, profileID)
}

func (l *Logger) WithStoreID(ctx context.Context, storeID string) context.Context {
	return l.WithField(ctx, fieldStoreID, storeID)
}

func (l *Logger) WithRole(ctx context.Context, role string) context.Context {
	return l.WithField(ctx, fieldRole, role)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.entry(ctx).Info().Msg(msg)
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	event := l.entry(ctx).Warn()
	if l.warnStack {
		event = event.Str("stack", stack())
	}
	event.Msg(msg)
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	event := l.entry(ctx).Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Str("stack", stack()).Msg(msg)
}

func (l *Logger) entry(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if scoped, ok := ctx.Value(entryKey{}).(*zerolog.Logger); ok {
			return scoped
		}
	}
	return l.base
}

func stack() string {
	return strings.TrimSpace(string(debug.Stack()))
}
