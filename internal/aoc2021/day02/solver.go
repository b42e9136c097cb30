package day02

import (
	"fmt"

	"github.com/povarna/generative-ai-with-go/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

// Solver answers day 2; --aimed switches to the aim-based course.
type Solver struct {
	logger *zerolog.Logger
}

// NewSolver returns a day 2 solver logging to logger.
func NewSolver(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Name is the command name.
func (s *Solver) Name() string { return "day02" }

// Short is the one-line command description.
func (s *Solver) Short() string { return "Solver for Advent of Code 2021 day 2" }

// Mode is the --aimed/-a flag.
func (s *Solver) Mode() *puzzle.ModeFlag {
	return &puzzle.ModeFlag{Name: "aimed", Shorthand: "a", Usage: "Aimed mode"}
}

// Solve parses the course and returns the answer line for the chosen mode.
func (s *Solver) Solve(data string, aimed bool) (string, error) {
	commands, err := ParseCommands(data)
	if err != nil {
		return "", fmt.Errorf("parse commands: %w", err)
	}

	s.logger.Debug().Int("commands", len(commands)).Msg("Commands parsed")

	if aimed {
		var sub Submarine
		sub.Apply(commands)
		s.logger.Debug().
			Int("x", sub.X).
			Int("depth", sub.Depth).
			Int("aim", sub.Aim).
			Msg("Aimed course replayed")
		return fmt.Sprintf("Aimed final position: %d", sub.Multiple()), nil
	}

	var pos Position
	pos.Apply(commands)
	return fmt.Sprintf("Position x:%d, y:%d - multiple:%d", pos.X, pos.Y, pos.Multiple()), nil
}
