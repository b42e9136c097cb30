package main

import (
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/aoc2021/day03"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

func main() {
	puzzle.Execute(func(_ *config.Config, logger *zerolog.Logger) puzzle.Solver {
		return day03.NewSolver(logger)
	})
}
