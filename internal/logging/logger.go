package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger writing to stdout.
// Unknown levels fall back to info; format "console" switches to human-readable output.
func New(level, format, env string) *zerolog.Logger {
	return newWithWriter(os.Stdout, level, format, env)
}

func newWithWriter(out io.Writer, level, format, env string) *zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && parsed != zerolog.NoLevel {
		lvl = parsed
	}

	if strings.ToLower(strings.TrimSpace(format)) == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	base := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "shareit").
		Str("env", env).
		Logger()

	return &base
}
