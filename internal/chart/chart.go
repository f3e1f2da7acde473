// Package chart provides sparkline rendering with color-coded temperature
// thresholds, minute tick marks and timeline labels for the watch view.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/cputemp/internal/history"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// TempColor returns the appropriate color for a temperature value given the
// warm/hot thresholds (in the same unit as the value).
func TempColor(v, warm, hot float64) lipgloss.Color {
	switch {
	case v >= hot:
		return lipgloss.Color("196") // red
	case v >= warm:
		return lipgloss.Color("208") // orange
	case v >= warm*0.85:
		return lipgloss.Color("220") // yellow
	default:
		return lipgloss.Color("78") // soft green
	}
}

// RenderSparklinePoints renders a sparkline with minute tick marks on the
// timeline. A subtle pipe is drawn at each minute boundary.
func RenderSparklinePoints(points []history.Point, width int, rangeMin, rangeMax, warm, hot float64) string {
	if width <= 0 {
		return ""
	}

	if len(points) == 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
		return dim.Render(strings.Repeat("╌", width))
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	padLen := width - len(points)
	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	for i := 0; i < padLen; i++ {
		sb.WriteString(dim.Render("╌"))
	}

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	for i, p := range points {
		norm := (p.Temp - rangeMin) / span
		norm = math.Max(0, math.Min(1, norm))

		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}

		isMinuteTick := false
		if !p.Time.IsZero() {
			if p.Time.Second() == 0 {
				isMinuteTick = true
			} else if i > 0 && !points[i-1].Time.IsZero() {
				if p.Time.Minute() != points[i-1].Time.Minute() {
					isMinuteTick = true
				}
			}
		}

		if isMinuteTick {
			sb.WriteString(tickStyle.Render("│"))
		} else {
			ch := string(sparkBlocks[idx])
			style := lipgloss.NewStyle().Foreground(TempColor(p.Temp, warm, hot))
			if p.Temp >= hot {
				style = style.Bold(true)
			}
			sb.WriteString(style.Render(ch))
		}
	}

	return sb.String()
}

// RenderTimeline renders the time labels under the sparkline, showing
// HH:MM at each minute tick position.
func RenderTimeline(points []history.Point, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	padLen := width - len(points)

	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	type tick struct {
		pos   int
		label string
	}
	var ticks []tick

	for i, p := range points {
		if p.Time.IsZero() {
			continue
		}
		isMinuteTick := false
		if p.Time.Second() == 0 {
			isMinuteTick = true
		} else if i > 0 && !points[i-1].Time.IsZero() {
			if p.Time.Minute() != points[i-1].Time.Minute() {
				isMinuteTick = true
			}
		}
		if isMinuteTick {
			ticks = append(ticks, tick{pos: padLen + i, label: p.Time.Format("15:04")})
		}
	}

	lastEnd := -1
	for _, t := range ticks {
		start := t.pos - 2
		if start < 0 {
			start = 0
		}
		end := start + len(t.label)
		if end > width {
			continue
		}
		if start <= lastEnd+1 {
			continue
		}
		for j, ch := range t.label {
			line[start+j] = ch
		}
		lastEnd = end
	}

	return tickStyle.Render(string(line))
}

// RenderTempValue renders the temperature value with color coding and the
// unit suffix.
func RenderTempValue(temp, warm, hot float64, symbol string) string {
	s := fmt.Sprintf("%6.1f%s", temp, symbol)
	style := lipgloss.NewStyle().Foreground(TempColor(temp, warm, hot))
	if temp >= hot {
		style = style.Bold(true)
	}
	return style.Render(s)
}
