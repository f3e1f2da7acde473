// Package history provides the ring buffer of recent readings behind the
// live watch view, with running min/peak statistics.
package history

import (
	"math"
	"time"
)

// Point is a single reading in the history, already converted to the
// display unit.
type Point struct {
	Temp float64
	Time time.Time
}

// Buffer stores a ring buffer of readings for the watched thermal zone.
type Buffer struct {
	Points []Point
	Max    int // capacity
	Min    float64
	Peak   float64
}

// NewBuffer creates a new history ring buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		Points: make([]Point, 0, capacity),
		Max:    capacity,
		Min:    math.MaxFloat64,
		Peak:   -math.MaxFloat64,
	}
}

// Push adds a new reading to the history.
func (b *Buffer) Push(temp float64, t time.Time) {
	p := Point{Temp: temp, Time: t}
	if len(b.Points) >= b.Max {
		copy(b.Points, b.Points[1:])
		b.Points[len(b.Points)-1] = p
	} else {
		b.Points = append(b.Points, p)
	}

	if temp < b.Min {
		b.Min = temp
	}
	if temp > b.Peak {
		b.Peak = temp
	}
}

// Last returns the most recent reading, or 0 if empty.
func (b *Buffer) Last() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	return b.Points[len(b.Points)-1].Temp
}

// Avg returns the average across all stored points.
func (b *Buffer) Avg() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range b.Points {
		sum += p.Temp
	}
	return sum / float64(len(b.Points))
}

// LastNPoints returns the last n points (with timestamps) for chart
// rendering.
func (b *Buffer) LastNPoints(n int) []Point {
	if n <= 0 || len(b.Points) == 0 {
		return nil
	}
	start := len(b.Points) - n
	if start < 0 {
		start = 0
	}
	out := make([]Point, len(b.Points[start:]))
	copy(out, b.Points[start:])
	return out
}
