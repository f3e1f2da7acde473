package sensor

import (
	"errors"
	"fmt"
)

// ErrNoDigits is returned when a sensor file holds no leading integer.
var ErrNoDigits = errors.New("no leading integer")

// ParseLeadingInt parses a decimal integer from the start of buf, skipping
// leading whitespace and accepting an optional sign. Trailing non-digit
// content (newline, unit suffix) is ignored, matching the observed formats
// of thermal zone files.
func ParseLeadingInt(buf []byte) (int64, error) {
	i := 0
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t' || buf[i] == '\n' || buf[i] == '\r') {
		i++
	}

	neg := false
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		neg = buf[i] == '-'
		i++
	}

	start := i
	var v int64
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		v = v*10 + int64(buf[i]-'0')
		i++
	}
	if i == start {
		return 0, fmt.Errorf("%w in %q", ErrNoDigits, buf)
	}

	if neg {
		v = -v
	}
	return v, nil
}
