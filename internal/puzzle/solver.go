// Package puzzle is the command line driver shared by the daily solvers.
package puzzle

//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

// ModeFlag describes the optional boolean flag selecting a solver variant.
type ModeFlag struct {
	Name      string
	Shorthand string
	Usage     string
}

// Solver turns the raw contents of an input file into the answer line.
type Solver interface {
	// Name is the command name, e.g. "day01".
	Name() string
	Short() string
	// Mode returns nil when the puzzle has a single variant.
	Mode() *ModeFlag
	Solve(input string, mode bool) (string, error)
}
