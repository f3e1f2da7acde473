package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/luki/cputemp/internal/history"
)

func TestSparkline(t *testing.T) {
	base := time.Date(2026, 8, 25, 14, 0, 30, 0, time.Local)
	var pts []history.Point
	for i, v := range []float64{30, 35, 40, 50, 60, 70, 80, 90, 100} {
		pts = append(pts, history.Point{Temp: v, Time: base.Add(time.Duration(i) * time.Second)})
	}

	result := RenderSparklinePoints(pts, 20, 20, 110, 80, 95)
	if len(result) == 0 {
		t.Error("sparkline should not be empty")
	}
	t.Logf("Sparkline: %s", result)
}

func TestSparklineMinuteTicks(t *testing.T) {
	base := time.Date(2026, 8, 25, 14, 0, 50, 0, time.Local)
	var pts []history.Point
	for i := 0; i < 20; i++ {
		pts = append(pts, history.Point{
			Temp: float64(40 + i%5),
			Time: base.Add(time.Duration(i) * time.Second),
		})
	}

	result := RenderSparklinePoints(pts, 20, 30, 55, 80, 95)
	if len(result) == 0 {
		t.Error("sparkline should not be empty")
	}
	if !strings.Contains(result, "│") {
		t.Error("expected minute tick mark in sparkline")
	}
	t.Logf("Sparkline with ticks: %s", result)
}

func TestSparklineEmpty(t *testing.T) {
	result := RenderSparklinePoints(nil, 10, 0, 100, 80, 95)
	if len(result) == 0 {
		t.Error("empty sparkline should render placeholder")
	}
}

func TestTempColorThresholds(t *testing.T) {
	if got := TempColor(96, 80, 95); got != "196" {
		t.Errorf("hot color = %v, want 196", got)
	}
	if got := TempColor(85, 80, 95); got != "208" {
		t.Errorf("warm color = %v, want 208", got)
	}
	if got := TempColor(40, 80, 95); got != "78" {
		t.Errorf("ok color = %v, want 78", got)
	}
}

func TestTimeline(t *testing.T) {
	base := time.Date(2026, 8, 25, 14, 0, 55, 0, time.Local)
	var pts []history.Point
	for i := 0; i < 20; i++ {
		pts = append(pts, history.Point{
			Temp: 45,
			Time: base.Add(time.Duration(i) * time.Second),
		})
	}

	result := RenderTimeline(pts, 20)
	if !strings.Contains(result, "14:01") {
		t.Errorf("expected 14:01 label in timeline, got %q", result)
	}
}

func TestRenderTempValue(t *testing.T) {
	result := RenderTempValue(45.0, 80, 95, "°C")
	if !strings.Contains(result, "45.0") || !strings.Contains(result, "°C") {
		t.Errorf("RenderTempValue = %q", result)
	}
}
