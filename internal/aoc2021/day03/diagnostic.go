// Package day03 reduces a binary diagnostic report to gamma and epsilon rates.
package day03

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/povarna/generative-ai-with-go/aoc2021/internal/input"
)

// MaxBitDepth keeps every row and the epsilon mask inside a signed machine word.
const MaxBitDepth = 63

var (
	ErrInvalidDigit  = errors.New("not a binary digit")
	ErrWidthTooLarge = errors.New("bit depth too large")
)

// Report is the parsed diagnostic: every row plus the common width W.
type Report struct {
	BitDepth int
	Rows     []uint64
}

// ParseReport reads one binary numeral per non-empty line. BitDepth is the
// length of the longest line; shorter lines keep zero high-order bits.
func ParseReport(data string) (Report, error) {
	lines := input.NumberedLines(data)
	report := Report{Rows: make([]uint64, 0, len(lines))}

	for _, line := range lines {
		row, err := parseRow(line.Text)
		if err != nil {
			return Report{}, &input.ParseError{Line: line.Number, Text: line.Text, Err: err}
		}
		report.BitDepth = max(report.BitDepth, len(line.Text))
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}

func parseRow(s string) (uint64, error) {
	if len(s) > MaxBitDepth {
		return 0, fmt.Errorf("%w: %d bits, max %d", ErrWidthTooLarge, len(s), MaxBitDepth)
	}
	var row uint64
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			row <<= 1
		case '1':
			row = row<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q at column %d", ErrInvalidDigit, s[i], i+1)
		}
	}
	return row, nil
}

// GammaRate sets bit p when strictly more rows have p set than unset.
// A tie yields 0.
func GammaRate(r Report) uint64 {
	var gamma uint64
	for p := 0; p < r.BitDepth; p++ {
		bit := uint64(1) << p
		ones := 0
		for _, row := range r.Rows {
			if row&bit != 0 {
				ones++
			}
		}
		if zeros := len(r.Rows) - ones; ones > zeros {
			gamma |= bit
		}
	}
	return gamma
}

// ReverseBits complements v within the lowest width bits.
func ReverseBits(v uint64, width int) uint64 {
	return ^v & mask(width)
}

// EpsilonRate is the minority-bit pattern: gamma complemented within BitDepth bits.
func EpsilonRate(r Report) uint64 {
	return ReverseBits(GammaRate(r), r.BitDepth)
}

// PowerConsumption is gamma times epsilon. Both fit in 63 bits, so the
// product needs up to 126 and is returned as a big.Int.
func PowerConsumption(r Report) *big.Int {
	hi, lo := bits.Mul64(GammaRate(r), EpsilonRate(r))
	power := new(big.Int).SetUint64(hi)
	power.Lsh(power, 64)
	return power.Or(power, new(big.Int).SetUint64(lo))
}

func mask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}
