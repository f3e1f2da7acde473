// Package logging builds the process logger. Diagnostics go to stderr so
// measurement output on stdout stays clean for pipelines.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tinted slog logger writing to stderr at the given level.
func New(level slog.Level) *slog.Logger {
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h)
}
