package day02

// Position is the direct-mode state: forward moves x, down and up move y.
type Position struct {
	X int
	Y int
}

// Apply replays the commands in order.
func (p *Position) Apply(commands []Command) {
	for _, c := range commands {
		switch c.Direction {
		case Forward:
			p.X += c.Amount
		case Down:
			p.Y += c.Amount
		case Up:
			p.Y -= c.Amount
		}
	}
}

// Multiple is x times y.
func (p Position) Multiple() int {
	return p.X * p.Y
}

// Submarine is the aimed-mode state. Down and up only turn the aim;
// forward moves x and changes depth by aim times the amount.
type Submarine struct {
	X     int
	Depth int
	Aim   int
}

// Apply replays the commands in order.
func (s *Submarine) Apply(commands []Command) {
	for _, c := range commands {
		switch c.Direction {
		case Forward:
			s.X += c.Amount
			s.Depth += s.Aim * c.Amount
		case Down:
			s.Aim += c.Amount
		case Up:
			s.Aim -= c.Amount
		}
	}
}

// Multiple is x times depth.
func (s Submarine) Multiple() int {
	return s.X * s.Depth
}
