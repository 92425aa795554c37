package observability

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. format "json" writes structured
// lines; anything else writes human-readable console output.
func NewLogger(w io.Writer, format string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
