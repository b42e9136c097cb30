package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a leveled logger writing to w. Unknown levels fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// NewConsole is the human readable variant used by the puzzle binaries.
// Callers pass stderr so stdout only carries the answer.
func NewConsole(level string, w io.Writer) zerolog.Logger {
	return New(level, zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339})
}
