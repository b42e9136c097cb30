package main

import (
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/aoc2021/day01"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

func main() {
	puzzle.Execute(func(cfg *config.Config, logger *zerolog.Logger) puzzle.Solver {
		return day01.NewSolver(cfg.Depth.WindowSize, logger)
	})
}
