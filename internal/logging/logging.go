// Package logging builds the zerolog logger shared by the CLI and services.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Options struct {
	// Level is one of trace, debug, info, warn, error, disabled. Blank means info.
	Level string
	// Format is console or json. Blank means console.
	Format string
	Writer io.Writer
}

// New returns a logger writing to opts.Writer, or stderr when nil.
func New(opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	case FormatJSON:
	default:
		return zerolog.Nop(), errdef.New(
			errdef.CodeConfig,
			"invalid log format %q: must be %q or %q",
			opts.Format,
			FormatConsole,
			FormatJSON,
		)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func ParseLevel(raw string) (zerolog.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel, errdef.New(errdef.CodeConfig, "invalid log level %q", raw)
	}
	return level, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
