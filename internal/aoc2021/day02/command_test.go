package day02

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/povarna/generative-ai-with-go/aoc2021/internal/input"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{line: "forward 5", want: Command{Direction: Forward, Amount: 5}},
		{line: "down 5", want: Command{Direction: Down, Amount: 5}},
		{line: "up 5", want: Command{Direction: Up, Amount: 5}},
		{line: "up 0", want: Command{Direction: Up, Amount: 0}},
		{line: "down -3", want: Command{Direction: Down, Amount: -3}},
		{line: "forward +5", want: Command{Direction: Forward, Amount: 5}},
		{line: "forward 09", want: Command{Direction: Forward, Amount: 9}},
		{line: "up " + strconv.Itoa(math.MinInt), want: Command{Direction: Up, Amount: math.MinInt}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if err != nil {
				t.Fatalf("ParseCommand(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantUnknown bool
	}{
		{name: "unknown keyword", line: "sideways 5", wantUnknown: true},
		{name: "keywords are case sensitive", line: "Forward 5", wantUnknown: true},
		{name: "missing amount", line: "forward"},
		{name: "non numeric amount", line: "up x"},
		{name: "fractional amount", line: "down 2.5"},
		{name: "trailing token", line: "forward 5 6"},
		{name: "hex amount", line: "forward 0x10"},
		{name: "missing keyword", line: "5"},
		{name: "line comment", line: "forward 5 // note"},
		{name: "block comment after", line: "forward 5 /* x */"},
		{name: "block comment before", line: "/* c */ up 3"},
		{name: "detached sign", line: "forward - 5"},
		{name: "double space", line: "forward  5"},
		{name: "tab separator", line: "forward\t5"},
		{name: "leading space", line: " up 3"},
		{name: "trailing space", line: "up 3 "},
		{name: "overflow", line: "down 9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			if err == nil {
				t.Fatalf("ParseCommand(%q) expected error", tt.line)
			}
			if got := errors.Is(err, ErrUnknownDirection); got != tt.wantUnknown {
				t.Errorf("errors.Is(ErrUnknownDirection) = %v, want %v (%v)", got, tt.wantUnknown, err)
			}
		})
	}
}

func TestParseCommands(t *testing.T) {
	got, err := ParseCommands("forward 5\ndown 5\n\n")
	if err != nil {
		t.Fatalf("ParseCommands failed: %v", err)
	}
	want := []Command{{Direction: Forward, Amount: 5}, {Direction: Down, Amount: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCommands = %v, want %v", got, want)
	}
}

func TestParseCommands_ReportsLine(t *testing.T) {
	_, err := ParseCommands("forward 5\n\nbackward 2\nup 1\n")

	var pe *input.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Line != 3 || pe.Text != "backward 2" {
		t.Errorf("ParseError = %+v, want line 3", pe)
	}
	if !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection in chain, got %v", err)
	}
}

func TestDirection_String(t *testing.T) {
	for d, want := range map[Direction]string{Forward: "forward", Down: "down", Up: "up", 0: "Direction(0)"} {
		if got := d.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
