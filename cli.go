package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luki/cputemp/internal/unit"
)

const defaultRuntimeSecs = 5

const helpText = `cputemp - samples the CPU thermal zone once per second and reports
current, average, minimum and maximum temperatures.

Usage:
 cputemp [options]
 cputemp watch [options]     live TUI monitor
 cputemp history             list archived sessions

Options:
 -h, --help          display this help and exit
 -v, --version       output version information and exit
 -a, --average       display only the averaged result (use with -s and [-C, -F or -K])
 -s, --seconds <n>   run for the specified number of seconds (default is 5)
 -C, --celsius       display temperature in degrees Celsius (default)
 -F, --fahrenheit    display temperature in degrees Fahrenheit
 -K, --kelvin        display temperature in degrees Kelvin`

// ErrConflictingUnits is returned when more than one unit flag is given.
var ErrConflictingUnits = errors.New("multiple temperature units specified, use only one unit (-C, -F or -K)")

// options is the parsed command line. Unit and seconds track whether they
// were set explicitly: normal mode prompts for a unit only when none was
// given, and only bounds the run when -s appeared.
type options struct {
	command string // "", "watch" or "history"

	help    bool
	version bool
	average bool

	unitSet bool
	unit    unit.Unit

	secondsSet bool
	seconds    int
}

// parseArgs walks the argument list getopt-style. An unrecognized flag or a
// missing -s value is an error; a non-numeric or sub-second -s value falls
// back to the default runtime, matching the historical atoi behavior.
func parseArgs(args []string) (options, error) {
	var opts options

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "watch", "history":
			opts.command = args[0]
			args = args[1:]
		default:
			return opts, fmt.Errorf("unknown command %q", args[0])
		}
	}

	setUnit := func(u unit.Unit) error {
		if opts.unitSet {
			return ErrConflictingUnits
		}
		opts.unitSet = true
		opts.unit = u
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		var secondsVal string
		hasSeconds := false
		if v, ok := strings.CutPrefix(arg, "--seconds="); ok {
			arg = "--seconds"
			secondsVal = v
			hasSeconds = true
		}

		switch arg {
		case "-h", "--help":
			opts.help = true
		case "-v", "--version":
			opts.version = true
		case "-a", "--average":
			opts.average = true
		case "-C", "--celsius":
			if err := setUnit(unit.Celsius); err != nil {
				return opts, err
			}
		case "-F", "--fahrenheit":
			if err := setUnit(unit.Fahrenheit); err != nil {
				return opts, err
			}
		case "-K", "--kelvin":
			if err := setUnit(unit.Kelvin); err != nil {
				return opts, err
			}
		case "-s", "--seconds":
			if !hasSeconds {
				if i+1 >= len(args) {
					return opts, fmt.Errorf("option %s requires an argument", arg)
				}
				i++
				secondsVal = args[i]
			}
			opts.secondsSet = true
			n, err := strconv.Atoi(secondsVal)
			if err != nil || n < 1 {
				n = defaultRuntimeSecs
			}
			opts.seconds = n
		default:
			return opts, fmt.Errorf("unrecognized option %q", arg)
		}
	}

	return opts, nil
}
