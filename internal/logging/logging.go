// Package logging builds the zerolog loggers used by the binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the named level. Console output is
// human readable; otherwise entries are JSON lines.
func New(w io.Writer, level string, console bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Open returns a logger for the given file, or a console logger on stderr when
// path is empty. The returned close function releases the file.
func Open(path, level string) (zerolog.Logger, func() error, error) {
	if path == "" {
		logger, err := New(os.Stderr, level, true)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level, false)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, f.Close, nil
}
