// Package stats accumulates running min/max/average statistics over one
// sampling session.
package stats

import "math"

// Accumulator tracks sum, count, min and max of the samples seen so far.
// The zero value is not ready to use; construct with New.
type Accumulator struct {
	Sum   float64
	Count int
	Min   float64
	Max   float64
}

// New returns an empty accumulator with Min/Max primed at ±infinity.
func New() *Accumulator {
	return &Accumulator{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

// Add records one sample.
func (a *Accumulator) Add(v float64) {
	a.Sum += v
	a.Count++
	if v < a.Min {
		a.Min = v
	}
	if v > a.Max {
		a.Max = v
	}
}

// Avg returns the mean of all recorded samples, or 0 if none were recorded.
func (a *Accumulator) Avg() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Sum / float64(a.Count)
}
