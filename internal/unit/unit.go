// Package unit defines the temperature scales the tool can report in and
// the conversions between them. Sensors always deliver Celsius; conversion
// happens at display time.
package unit

import "strings"

// Unit is a temperature scale.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

// String returns the full scale name as used in reports and the session log.
func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	default:
		return "Celsius"
	}
}

// Symbol returns the short display suffix for the scale.
func (u Unit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

// FromCelsius converts a Celsius value to this unit.
func (u Unit) FromCelsius(c float64) float64 {
	switch u {
	case Fahrenheit:
		return 1.8*c + 32.0
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// ParseAnswer maps an interactive prompt answer to a unit. Accepted answers
// are the single characters c, f and k, case-insensitive.
func ParseAnswer(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return Celsius, true
	case "f":
		return Fahrenheit, true
	case "k":
		return Kelvin, true
	}
	return Celsius, false
}
