// Package day02 replays submarine commands in direct and aimed mode.
package day02

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/povarna/generative-ai-with-go/aoc2021/internal/input"
)

// ErrUnknownDirection is returned for a keyword other than forward, down or up.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is the closed set of command keywords.
type Direction int

const (
	Forward Direction = iota + 1
	Down
	Up
)

var directionNames = map[Direction]string{
	Forward: "forward",
	Down:    "down",
	Up:      "up",
}

// String returns the keyword, or Direction(n) for values outside the set.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a command keyword to its Direction.
func ParseDirection(keyword string) (Direction, error) {
	for d, name := range directionNames {
		if name == keyword {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDirection, keyword)
}

// Command is one parsed line: a direction and a signed amount.
type Command struct {
	Direction Direction
	Amount    int
}

// String formats the command the way it appears in the input.
func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Direction, c.Amount)
}

// commandLexer only knows words, signed decimals and a single space, so
// comments, tabs and stray punctuation fail to lex.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Space", Pattern: ` `},
})

// commandLine is the grammar of a single line: <keyword> <integer>.
type commandLine struct {
	Keyword string `parser:"@Keyword Space"`
	Amount  string `parser:"@Int"`
}

var commandParser = participle.MustBuild[commandLine](participle.Lexer(commandLexer))

// ParseCommand parses "forward 5", "down 5" or "up 5".
func ParseCommand(line string) (Command, error) {
	parsed, err := commandParser.ParseString("", line)
	if err != nil {
		return Command{}, err
	}

	direction, err := ParseDirection(parsed.Keyword)
	if err != nil {
		return Command{}, err
	}

	amount, err := input.ToInt(parsed.Amount)
	if err != nil {
		return Command{}, err
	}

	return Command{Direction: direction, Amount: amount}, nil
}

// ParseCommands parses every non-empty line. The first bad line aborts.
func ParseCommands(data string) ([]Command, error) {
	lines := input.NumberedLines(data)
	commands := make([]Command, 0, len(lines))
	for _, line := range lines {
		cmd, err := ParseCommand(line.Text)
		if err != nil {
			return nil, &input.ParseError{Line: line.Number, Text: line.Text, Err: err}
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
