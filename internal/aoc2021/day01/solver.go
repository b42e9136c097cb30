package day01

import (
	"fmt"

	"github.com/povarna/generative-ai-with-go/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

type Solver struct {
	window int
	logger *zerolog.Logger
}

func NewSolver(window int, logger *zerolog.Logger) *Solver {
	if window < 1 {
		window = DefaultWindow
	}
	return &Solver{window: window, logger: logger}
}

func (s *Solver) Name() string { return "day01" }

func (s *Solver) Short() string { return "Solver for Advent of Code 2021 day 1" }

func (s *Solver) Mode() *puzzle.ModeFlag {
	return &puzzle.ModeFlag{Name: "windowed", Shorthand: "w", Usage: "Windowed mode"}
}

func (s *Solver) Solve(data string, windowed bool) (string, error) {
	depths, err := ParseDepths(data)
	if err != nil {
		return "", fmt.Errorf("parse depths: %w", err)
	}

	s.logger.Debug().Int("readings", len(depths)).Msg("Depths parsed")

	if windowed {
		n := WindowedIncreases(s.window, depths)
		s.logger.Debug().Int("window", s.window).Int("increases", n).Msg("Windowed increases counted")
		return fmt.Sprintf("Windowed Increases: %d", n), nil
	}

	n := CountIncreases(depths)
	s.logger.Debug().Int("increases", n).Msg("Increases counted")
	return fmt.Sprintf("Increases: %d", n), nil
}
