// Package config resolves environment-level settings. Flags beat env, env
// beats defaults; an optional .env file in the working directory is loaded
// first so local setups can pin overrides without exporting anything.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luki/cputemp/internal/report"
	"github.com/luki/cputemp/internal/store"
)

// Config carries the environment-derived settings of one invocation.
type Config struct {
	LogLevel slog.Level

	// LogPath is the session log appended after a completed normal-mode run.
	// The file must already exist; see report.Append.
	LogPath string

	// ArchivePath is the sqlite session history database.
	ArchivePath string

	// SourceOverride, when set, names the thermal zone file to read instead
	// of scanning the candidate list. The path is still stat-checked.
	SourceOverride string
}

// Load reads an optional .env file, then the environment. A missing .env is
// not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	levelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := parseLogLevel(levelStr)
	if err != nil {
		return Config{}, err
	}

	logPath := strings.TrimSpace(os.Getenv("CPUTEMP_LOG"))
	if logPath == "" {
		logPath = report.DefaultLogPath
	}

	archivePath := strings.TrimSpace(os.Getenv("CPUTEMP_DB"))
	if archivePath == "" {
		archivePath = store.DefaultPath()
	}

	return Config{
		LogLevel:       level,
		LogPath:        logPath,
		ArchivePath:    archivePath,
		SourceOverride: strings.TrimSpace(os.Getenv("CPUTEMP_SOURCE")),
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
