package main

import (
	"errors"
	"testing"

	"github.com/luki/cputemp/internal/unit"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{"empty", nil, options{}},
		{"help short", []string{"-h"}, options{help: true}},
		{"help long", []string{"--help"}, options{help: true}},
		{"version", []string{"-v"}, options{version: true}},
		{"average", []string{"-a"}, options{average: true}},
		{"celsius", []string{"-C"}, options{unitSet: true, unit: unit.Celsius}},
		{"fahrenheit", []string{"--fahrenheit"}, options{unitSet: true, unit: unit.Fahrenheit}},
		{"kelvin", []string{"-K"}, options{unitSet: true, unit: unit.Kelvin}},
		{"seconds", []string{"-s", "30"}, options{secondsSet: true, seconds: 30}},
		{"seconds long eq", []string{"--seconds=30"}, options{secondsSet: true, seconds: 30}},
		{"seconds invalid", []string{"-s", "abc"}, options{secondsSet: true, seconds: 5}},
		{"seconds zero", []string{"-s", "0"}, options{secondsSet: true, seconds: 5}},
		{"seconds negative", []string{"-s", "-3"}, options{secondsSet: true, seconds: 5}},
		{"watch", []string{"watch", "-F"}, options{command: "watch", unitSet: true, unit: unit.Fahrenheit}},
		{"history", []string{"history"}, options{command: "history"}},
		{
			"combined",
			[]string{"-a", "-s", "10", "-K"},
			options{average: true, secondsSet: true, seconds: 10, unitSet: true, unit: unit.Kelvin},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if err != nil {
				t.Fatalf("parseArgs(%v): %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseArgsConflictingUnits(t *testing.T) {
	for _, args := range [][]string{
		{"-C", "-F"},
		{"-F", "-K"},
		{"--celsius", "--kelvin"},
		{"-C", "-C"},
	} {
		_, err := parseArgs(args)
		if !errors.Is(err, ErrConflictingUnits) {
			t.Errorf("parseArgs(%v): got %v, want ErrConflictingUnits", args, err)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-x"},
		{"--bogus"},
		{"-s"},
		{"frobnicate"},
	} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v): expected error", args)
		}
	}
}
