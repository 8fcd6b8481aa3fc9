package notice

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a zerolog-backed Sink. Debug events are dropped unless the
// logger was constructed with debug enabled.
type Logger struct {
	log   zerolog.Logger
	debug bool
}

// NewLogger returns a Logger writing human-readable lines to stderr.
func NewLogger(app string, debug bool) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return NewLoggerTo(output, app, debug)
}

// NewLoggerTo returns a Logger writing to w.
func NewLoggerTo(w io.Writer, app string, debug bool) *Logger {
	logger := zerolog.New(w).With().Timestamp().Str("app", app).Logger()
	return &Logger{log: logger, debug: debug}
}

// Debug emits a debug line when debugging is enabled.
func (l *Logger) Debug(msg string, fields map[string]any) {
	if !l.debug {
		return
	}
	l.log.Debug().Fields(fields).Msg(msg)
}

// Warn emits a warning line.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.log.Warn().Fields(fields).Msg(msg)
}
