// Package logging constructs the zerolog logger shared by the daemon and
// its services.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a logger at the given level. When pretty is set the output is
// a human-readable console writer instead of JSON lines.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
