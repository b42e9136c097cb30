// Package input loads puzzle files and splits them into the non-empty lines
// the parsers consume.
package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Line is a non-empty input line and its 1-based position in the file.
type Line struct {
	Number int
	Text   string
}

// ReadFile reads the whole puzzle input in one call.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file %q: %w", path, err)
	}
	return string(data), nil
}

// SplitLines splits data on line breaks and drops empty lines.
func SplitLines(data string) []string {
	numbered := NumberedLines(data)
	lines := make([]string, 0, len(numbered))
	for _, l := range numbered {
		lines = append(lines, l.Text)
	}
	return lines
}

// NumberedLines is SplitLines keeping the original line numbers, so parse
// errors can point at the offending line. A trailing \r is stripped.
func NumberedLines(data string) []Line {
	var lines []Line
	for i, raw := range strings.Split(data, "\n") {
		text := strings.TrimSuffix(raw, "\r")
		if text == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: text})
	}
	return lines
}

// ToInt parses a signed decimal integer.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer %q: %w", s, err)
	}
	return n, nil
}

// ParseError reports a line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
