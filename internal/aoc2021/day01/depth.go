// Package day01 counts depth increases in a sonar sweep.
package day01

import (
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/input"
)

// DefaultWindow is the window size used by --windowed.
const DefaultWindow = 3

// ParseDepths reads one signed integer per non-empty line.
func ParseDepths(data string) ([]int, error) {
	lines := input.NumberedLines(data)
	depths := make([]int, 0, len(lines))
	for _, line := range lines {
		d, err := input.ToInt(line.Text)
		if err != nil {
			return nil, &input.ParseError{Line: line.Number, Text: line.Text, Err: err}
		}
		depths = append(depths, d)
	}
	return depths, nil
}

// CountIncreases counts readings strictly greater than the one before.
func CountIncreases(depths []int) int {
	count := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			count++
		}
	}
	return count
}

// WindowedIncreases counts increases between sums of size consecutive
// readings. Adjacent windows share size-1 terms, so comparing the sums is the
// same as comparing depths[i] with depths[i-size].
func WindowedIncreases(size int, depths []int) int {
	if size < 1 {
		return 0
	}
	count := 0
	for i := size; i < len(depths); i++ {
		if depths[i] > depths[i-size] {
			count++
		}
	}
	return count
}

// WindowSums returns the sum of every window of size consecutive readings.
func WindowSums(size int, depths []int) []int {
	if size < 1 || len(depths) < size {
		return nil
	}
	sums := make([]int, 0, len(depths)-size+1)
	sum := 0
	for i, d := range depths {
		sum += d
		if i >= size {
			sum -= depths[i-size]
		}
		if i >= size-1 {
			sums = append(sums, sum)
		}
	}
	return sums
}
