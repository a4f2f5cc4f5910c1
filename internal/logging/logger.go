// Package logging builds the zerolog logger used while the picker owns the
// terminal. Output goes to a file because stdout and stderr are taken by the
// interface and the picked result.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Path is the log file. Empty disables logging.
	Path  string
	Level zerolog.Level
	// Console switches to the human readable zerolog console format.
	Console bool
}

// New returns a logger and the closer for its file. With an empty path the
// logger discards everything and the closer is a no-op.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file: %w", err)
	}
	return NewWriter(f, opts), f, nil
}

// NewWriter returns a logger writing to w.
func NewWriter(w io.Writer, opts Options) zerolog.Logger {
	if opts.Console {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: "15:04:05",
		}
	}
	return zerolog.New(w).
		Level(opts.Level).
		With().
		Timestamp().
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
