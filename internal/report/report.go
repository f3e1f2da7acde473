// Package report appends human-readable session summaries to the cputemp
// log file. The file is never created: a missing log path downgrades the
// write to a warning at the call site.
package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/luki/cputemp/internal/session"
)

// DefaultLogPath is where session summaries are appended unless overridden.
const DefaultLogPath = "/var/log/cputemp.log"

// ErrLogMissing is returned when the log file does not already exist.
var ErrLogMissing = errors.New("log file does not exist")

// Append writes one session record to the log at path. The file must
// pre-exist; Append stats it first and returns ErrLogMissing otherwise,
// without creating anything.
func Append(path string, sum session.Summary) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrLogMissing, path)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(Format(sum)); err != nil {
		return fmt.Errorf("write log file %s: %w", path, err)
	}
	return nil
}

// Format renders a session record. The layout (including the historical
// "ccputime" product name and the unpadded timestamp) is kept compatible
// with existing log parsers.
func Format(sum session.Summary) string {
	t := sum.Started
	u := sum.Unit.String()
	return fmt.Sprintf(
		"Session started at %d-%d-%d %d:%d:%d :\n"+
			"ccputime was run for %d seconds.\n"+
			"Highest recorded temperature was %f degrees %s.\n"+
			"Lowest recorded temperature was %f degrees %s.\n"+
			"Average recorded temperature was %f degrees %s.\n"+
			"---------------\n",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(),
		sum.Seconds,
		sum.Max, u,
		sum.Min, u,
		sum.Avg, u,
	)
}
