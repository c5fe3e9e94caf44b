// Package logger builds the zerolog logger shared by the process.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"huntapi/internal/config"
)

// New returns a logger writing to w. Format "console" selects the human
// friendly writer, anything else emits one JSON object per line.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "huntapi").Logger()
}
