package container

import (
	"io"
	"log/slog"
	"os"

	"github.com/rimecraft-rs/rimecraft-sub000/palette"
)

// Logger wraps slog.Logger with the container's field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with handler. A nil handler logs text to
// stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON lines to w at level.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger writing key=value text to w at level.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards everything. It is the default.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogResize records a palette upgrade.
func (l *Logger) LogResize(from, to palette.Config, cells int) {
	l.Debug("palette resized",
		"from_strategy", from.Strategy.String(),
		"from_bits", from.Bits,
		"to_strategy", to.Strategy.String(),
		"to_bits", to.Bits,
		"cells", cells,
	)
}
