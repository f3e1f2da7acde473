package config

import (
	"log/slog"
	"testing"

	"github.com/luki/cputemp/internal/report"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CPUTEMP_LOG", "")
	t.Setenv("CPUTEMP_DB", "")
	t.Setenv("CPUTEMP_SOURCE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogPath != report.DefaultLogPath {
		t.Errorf("LogPath = %q, want %q", cfg.LogPath, report.DefaultLogPath)
	}
	if cfg.ArchivePath == "" {
		t.Error("ArchivePath should have a default")
	}
	if cfg.SourceOverride != "" {
		t.Errorf("SourceOverride = %q, want empty", cfg.SourceOverride)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CPUTEMP_LOG", "/tmp/alt.log")
	t.Setenv("CPUTEMP_DB", "/tmp/alt.db")
	t.Setenv("CPUTEMP_SOURCE", "/sys/class/thermal/thermal_zone0/temp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogPath != "/tmp/alt.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.ArchivePath != "/tmp/alt.db" {
		t.Errorf("ArchivePath = %q", cfg.ArchivePath)
	}
	if cfg.SourceOverride != "/sys/class/thermal/thermal_zone0/temp" {
		t.Errorf("SourceOverride = %q", cfg.SourceOverride)
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid LOG_LEVEL")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
