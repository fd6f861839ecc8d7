package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w at level
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "cardform",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext returns the logger stored in ctx, or log.Default()
func LoggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
