// Package sensor locates and reads the kernel's CPU thermal zone files.
// The candidate list is a fixed set of well-known sysfs/procfs paths; the
// first one that exists wins and is read once per sample for the rest of
// the run.
package sensor

import (
	"errors"
	"fmt"
	"os"
)

// ThermalPaths are the candidate thermal zone files, in priority order.
var ThermalPaths = []string{
	"/sys/devices/LNXSYSTM:00/LNXTHERM:00/LNXTHERM:01/thermal_zone/temp",
	"/sys/bus/acpi/devices/LNXTHERM:00/thermal_zone/temp",
	"/proc/acpi/thermal_zone/THM0/temperature",
	"/proc/acpi/thermal_zone/THRM/temperature",
	"/proc/acpi/thermal_zone/THR1/temperature",
}

// ErrNoSensor is returned when none of the candidate paths exist.
var ErrNoSensor = errors.New("no thermal data source found in /sys or /proc")

// readBufSize bounds a single sensor read; 32 bytes covers any plausible
// integer plus trailing unit text.
const readBufSize = 32

// Locate returns the first candidate path that exists. Only existence is
// checked, never content; the same filesystem state always yields the same
// choice.
func Locate(candidates []string) (string, error) {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrNoSensor
}

// Source is a resolved thermal zone file, read fresh on every sample.
type Source struct {
	Path string
}

// Read opens the sensor file, reads up to 32 bytes from the start and parses
// the leading integer as millidegrees Celsius. The raw value is divided by
// 1000 as an integer before conversion to float, truncating sub-degree
// precision the same way the sensor files have historically been consumed.
func (s Source) Read() (float64, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return 0, fmt.Errorf("open sensor %s: %w", s.Path, err)
	}
	defer f.Close()

	buf := make([]byte, readBufSize)
	n, err := f.Read(buf)
	if n == 0 {
		if err == nil {
			err = errors.New("empty read")
		}
		return 0, fmt.Errorf("read sensor %s: %w", s.Path, err)
	}

	milli, err := ParseLeadingInt(buf[:n])
	if err != nil {
		return 0, fmt.Errorf("parse sensor %s: %w", s.Path, err)
	}

	return float64(milli / 1000), nil
}

// Sample implements the session.Sampler contract: one Celsius reading per
// call, re-opening the file each time (the files are kernel-virtual and must
// never be cached).
func (s Source) Sample() (float64, error) {
	return s.Read()
}
