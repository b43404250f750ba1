package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options select the backend and verbosity of a Logger built by New.
type Options struct {
	Format string // text | json (slog), console (zerolog)
	Level  string // debug | info | warn | error
	Output io.Writer
}

// New builds a Logger for the given options. Unknown levels fall back to info.
func New(opts Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), nil
	case FormatJSON:
		h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), nil
	case FormatConsole:
		w := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
		l := zerolog.New(w).Level(zerologLevel(opts.Level)).With().Timestamp().Logger()
		return NewZerologLogger(l), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
