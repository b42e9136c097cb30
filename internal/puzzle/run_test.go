package puzzle_test

import (
	"bytes"
	"testing"

	"github.com/povarna/generative-ai-with-go/aoc2021/internal/aoc2021/day01"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/aoc2021/day02"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/aoc2021/day03"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRun_Puzzles(t *testing.T) {
	depth := func(cfg *config.Config, l *zerolog.Logger) puzzle.Solver {
		return day01.NewSolver(cfg.Depth.WindowSize, l)
	}
	motion := func(_ *config.Config, l *zerolog.Logger) puzzle.Solver { return day02.NewSolver(l) }
	diagnostic := func(_ *config.Config, l *zerolog.Logger) puzzle.Solver { return day03.NewSolver(l) }

	const depths = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"
	const course = "forward 5\ndown 5\nforward 8\nup 3\ndown 8\nforward 2\n"
	const report = "00100\n11110\n10110\n10111\n10101\n01111\n00111\n11100\n10000\n11001\n00010\n01010\n"

	tests := []struct {
		name     string
		build    puzzle.Builder
		input    string
		flags    []string
		wantCode int
		wantOut  string
	}{
		{name: "depth", build: depth, input: depths, wantOut: "Increases: 7\n"},
		{name: "depth windowed", build: depth, input: depths, flags: []string{"--windowed"}, wantOut: "Windowed Increases: 5\n"},
		{name: "depth bad token", build: depth, input: "199\nabc\n", wantCode: 1},
		{name: "motion direct", build: motion, input: "forward 5\ndown 5\nup 1\n", wantOut: "Position x:5, y:4 - multiple:20\n"},
		{name: "motion aimed", build: motion, input: course, flags: []string{"-a"}, wantOut: "Aimed final position: 900\n"},
		{name: "motion unknown keyword", build: motion, input: "backward 1\n", wantCode: 1},
		{name: "diagnostic", build: diagnostic, input: report, wantOut: "Gamma: 22, Epsilon: 9, Power consumption: 198\n"},
		{name: "diagnostic bad digit", build: diagnostic, input: "0102\n", wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			path := writeInput(t, tt.input)

			var stdout, stderr bytes.Buffer
			code := puzzle.Run(tt.build, append(tt.flags, path), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			assert.Equal(t, tt.wantOut, stdout.String())
		})
	}
}
