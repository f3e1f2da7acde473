// Package session drives the sampling loop: one sensor reading per second,
// converted to the configured unit and folded into running statistics until
// the tick budget is spent or the context is canceled.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/luki/cputemp/internal/stats"
	"github.com/luki/cputemp/internal/unit"
)

// Sampler delivers one Celsius reading per call. The sensor source re-opens
// its file on every call; tests substitute scripted values.
type Sampler interface {
	Sample() (float64, error)
}

// ErrNoSamples is returned when the loop terminates before collecting a
// single sample, e.g. an interrupt arriving before the first tick.
var ErrNoSamples = errors.New("not enough measurements collected")

// Config holds the immutable parameters of one sampling run.
type Config struct {
	Unit        unit.Unit
	Ticks       int  // number of one-second ticks; 0 means run until canceled
	AverageOnly bool // suppress per-tick output
	Out         io.Writer
	Interval    time.Duration // tick pacing; defaults to one second
}

// Summary is the result of a completed run.
type Summary struct {
	Started time.Time
	Seconds int
	Unit    unit.Unit
	Min     float64
	Max     float64
	Avg     float64
}

// Run executes the sampling loop. It returns ErrNoSamples if the loop ended
// with zero ticks, or a wrapped read error if the sensor became unreadable
// mid-run (in which case no summary is produced). Cancellation is observed
// at the top of each iteration and during the pacing sleep.
func Run(ctx context.Context, cfg Config, src Sampler) (Summary, error) {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	started := time.Now()
	acc := stats.New()
	tick := 0

	for {
		if ctx.Err() != nil {
			break
		}
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			break
		}

		v, err := src.Sample()
		if err != nil {
			return Summary{}, fmt.Errorf("reading temperature data: %w", err)
		}

		acc.Add(cfg.Unit.FromCelsius(v))
		tick++

		if !cfg.AverageOnly {
			fmt.Fprintf(out, "CPU Temperature: %f %s (Time running: %d secs)\n",
				acc.Avg(), cfg.Unit, tick)
		}

		select {
		case <-ctx.Done():
		case <-time.After(interval):
		}
	}

	if acc.Count == 0 {
		return Summary{}, ErrNoSamples
	}

	return Summary{
		Started: started,
		Seconds: acc.Count,
		Unit:    cfg.Unit,
		Min:     acc.Min,
		Max:     acc.Max,
		Avg:     acc.Avg(),
	}, nil
}
