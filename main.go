package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/luki/cputemp/internal/config"
	"github.com/luki/cputemp/internal/logging"
	"github.com/luki/cputemp/internal/monitor"
	"github.com/luki/cputemp/internal/report"
	"github.com/luki/cputemp/internal/sensor"
	"github.com/luki/cputemp/internal/session"
	"github.com/luki/cputemp/internal/store"
	"github.com/luki/cputemp/internal/unit"
)

var version = "cputemp v0.2"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	slog.SetDefault(logging.New(cfg.LogLevel))

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if !errors.Is(err, ErrConflictingUnits) {
			fmt.Fprintln(os.Stderr, helpText)
		}
		return 1
	}

	if opts.help {
		fmt.Println(helpText)
		return 0
	}
	if opts.version {
		fmt.Println(version)
		return 0
	}

	switch opts.command {
	case "watch":
		return runWatch(cfg, opts)
	case "history":
		return runHistory(cfg)
	}

	if opts.average {
		return runAverage(cfg, opts)
	}
	return runNormal(cfg, opts)
}

// resolveSource picks the thermal zone file: the configured override if one
// is set, otherwise the first existing candidate path.
func resolveSource(cfg config.Config) (sensor.Source, error) {
	candidates := sensor.ThermalPaths
	if cfg.SourceOverride != "" {
		candidates = []string{cfg.SourceOverride}
	}
	path, err := sensor.Locate(candidates)
	if err != nil {
		return sensor.Source{}, err
	}
	return sensor.Source{Path: path}, nil
}

// reportNoSensor prints the fatal no-source diagnostic with every candidate
// path that was tried.
func reportNoSensor(cfg config.Config) {
	fmt.Fprintln(os.Stderr, "Can not find a valid data source in /sys or /proc. Possible sources:")
	candidates := sensor.ThermalPaths
	if cfg.SourceOverride != "" {
		candidates = []string{cfg.SourceOverride}
	}
	for _, p := range candidates {
		fmt.Fprintf(os.Stderr, "\t%s\n", p)
	}
}

// runNormal is the default mode: sample until interrupted (or for -s
// seconds), printing the running average each tick, then report and persist
// the session summary.
func runNormal(cfg config.Config, opts options) int {
	fmt.Println(version)

	src, err := resolveSource(cfg)
	if err != nil {
		reportNoSensor(cfg)
		return 1
	}

	u := opts.unit
	if !opts.unitSet {
		u = promptUnit(os.Stdin, os.Stdout)
	}

	ticks := 0
	if opts.secondsSet {
		ticks = opts.seconds
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := session.Run(ctx, session.Config{
		Unit:  u,
		Ticks: ticks,
		Out:   os.Stdout,
	}, src)
	if err != nil {
		if errors.Is(err, session.ErrNoSamples) {
			fmt.Fprintln(os.Stderr, "Not enough measurements collected...")
			return 0
		}
		slog.Error("sampling aborted", "source", src.Path, "error", err)
		return 1
	}

	us := u.String()
	fmt.Printf("\nHighest recorded temperature was %f degrees %s.\n", sum.Max, us)
	fmt.Printf("Lowest recorded temperature was %f degrees %s.\n", sum.Min, us)
	fmt.Printf("Average recorded temperature was %f degrees %s.\n\n", sum.Avg, us)

	if err := report.Append(cfg.LogPath, sum); err != nil {
		slog.Warn("session log not updated", "path", cfg.LogPath, "error", err)
	} else {
		fmt.Println("Log has been updated.")
	}

	archiveSession(cfg.ArchivePath, sum)
	return 0
}

// runAverage is the -a mode: a fixed number of silent ticks, then a single
// averaged line. A read failure is immediately fatal and nothing is logged.
func runAverage(cfg config.Config, opts options) int {
	fmt.Println(version)

	src, err := resolveSource(cfg)
	if err != nil {
		reportNoSensor(cfg)
		return 1
	}

	seconds := opts.seconds
	if seconds < 1 {
		seconds = defaultRuntimeSecs
	}

	sum, err := session.Run(context.Background(), session.Config{
		Unit:        opts.unit,
		Ticks:       seconds,
		AverageOnly: true,
	}, src)
	if err != nil {
		slog.Error("sampling aborted", "source", src.Path, "error", err)
		return 1
	}

	fmt.Printf("Average temperature was %.1f degrees %s.\n", sum.Avg, sum.Unit)
	return 0
}

// runWatch launches the live TUI monitor.
func runWatch(cfg config.Config, opts options) int {
	src, err := resolveSource(cfg)
	if err != nil {
		reportNoSensor(cfg)
		return 1
	}

	if err := monitor.Run(src, opts.unit, src.Path); err != nil {
		slog.Error("watch failed", "error", err)
		return 1
	}
	return 0
}

// runHistory lists archived sessions, newest first.
func runHistory(cfg config.Config) int {
	archive, err := store.Open(cfg.ArchivePath)
	if err != nil {
		slog.Error("open session archive", "path", cfg.ArchivePath, "error", err)
		return 1
	}
	defer archive.Close()

	sessions, err := archive.Recent(20)
	if err != nil {
		slog.Error("list sessions", "error", err)
		return 1
	}
	if len(sessions) == 0 {
		fmt.Println("No archived sessions.")
		return 0
	}

	fmt.Printf("%-19s  %7s  %-10s  %8s  %8s  %8s\n",
		"STARTED", "SECONDS", "UNIT", "MIN", "MAX", "AVG")
	for _, s := range sessions {
		fmt.Printf("%-19s  %7d  %-10s  %8.1f  %8.1f  %8.1f\n",
			s.Started.Format("2006-01-02 15:04:05"), s.Seconds, s.Unit, s.Min, s.Max, s.Avg)
	}
	return 0
}

// promptUnit asks for a unit until one of c/f/k is given. EOF on stdin
// falls back to Celsius rather than looping forever.
func promptUnit(in io.Reader, out io.Writer) unit.Unit {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Set temperature unit: (c)elsius, (f)ahrenheit or (k)elvin: ")
		line, err := r.ReadString('\n')
		fmt.Fprintln(out)
		if u, ok := unit.ParseAnswer(line); ok {
			return u
		}
		if err != nil {
			return unit.Celsius
		}
	}
}

// archiveSession records a completed session in the history database.
// Archive trouble is a warning, never a failure of the run itself.
func archiveSession(path string, sum session.Summary) {
	archive, err := store.Open(path)
	if err != nil {
		slog.Warn("session archive unavailable", "path", path, "error", err)
		return
	}
	defer archive.Close()

	if err := archive.Record(sum); err != nil {
		slog.Warn("session not archived", "path", path, "error", err)
	}
}
