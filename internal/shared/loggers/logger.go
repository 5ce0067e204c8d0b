package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New creates a JSON logger on stdout at the given level.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter is New with an explicit sink, used by tests that inspect log output.
func NewWithWriter(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
