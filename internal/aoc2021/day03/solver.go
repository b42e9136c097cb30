package day03

import (
	"fmt"

	"github.com/povarna/generative-ai-with-go/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

type Solver struct {
	logger *zerolog.Logger
}

func NewSolver(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

func (s *Solver) Name() string { return "day03" }

func (s *Solver) Short() string { return "Solver for Advent of Code 2021 day 3" }

// Mode is nil: day 3 has a single variant.
func (s *Solver) Mode() *puzzle.ModeFlag { return nil }

func (s *Solver) Solve(data string, _ bool) (string, error) {
	report, err := ParseReport(data)
	if err != nil {
		return "", fmt.Errorf("parse report: %w", err)
	}

	s.logger.Debug().
		Int("rows", len(report.Rows)).
		Int("bit_depth", report.BitDepth).
		Msg("Report parsed")

	gamma := GammaRate(report)
	epsilon := EpsilonRate(report)
	power := PowerConsumption(report)

	return fmt.Sprintf("Gamma: %d, Epsilon: %d, Power consumption: %s", gamma, epsilon, power), nil
}
