package puzzle

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/input"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Builder creates a solver once configuration and logging are ready.
type Builder func(cfg *config.Config, logger *zerolog.Logger) Solver

// NewCommand wires a solver behind a cobra command taking exactly one FILE
// argument. The answer line is written to out.
func NewCommand(s Solver, logger *zerolog.Logger, out io.Writer) *cobra.Command {
	var mode bool

	cmd := &cobra.Command{
		Use:           s.Name() + " FILE",
		Short:         s.Short(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation; failures from here on are not usage errors.
			cmd.SilenceUsage = true

			path := args[0]
			data, err := input.ReadFile(path)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("file", path).
				Int("bytes", len(data)).
				Bool("mode", mode).
				Msg("Input loaded")

			answer, err := s.Solve(data, mode)
			if err != nil {
				return fmt.Errorf("solve %s: %w", path, err)
			}

			_, err = fmt.Fprintln(out, answer)
			return err
		},
	}

	if m := s.Mode(); m != nil {
		cmd.Flags().BoolVarP(&mode, m.Name, m.Shorthand, false, m.Usage)
	}

	return cmd
}

// Run executes one solver invocation and returns the process exit code.
// An optional .env in the working directory is loaded first.
func Run(build Builder, args []string, stdout, stderr io.Writer) int {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.NewConsole("info", stderr)
		boot.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	log := logger.NewConsole(cfg.LogLevel, stderr)
	if envErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cmd := NewCommand(build(cfg, &log), &log, stdout)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Run failed")
		return 1
	}

	return 0
}

// Execute is the main function of every puzzle binary.
func Execute(build Builder) {
	os.Exit(Run(build, os.Args[1:], os.Stdout, os.Stderr))
}
