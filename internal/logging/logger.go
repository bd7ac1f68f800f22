// Package logging centralizes slog construction for the cirq tooling.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger used by the CLI. It writes to stderr so
// that stdout stays reserved for document and diagram output.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
