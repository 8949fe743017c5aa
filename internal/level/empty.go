package level

// EmptyArchitect produces an open floor with the start in the centre.
// It draws no randomness, which makes it useful for deterministic tests.
type EmptyArchitect struct{}

// Kind implements Architect.
func (EmptyArchitect) Kind() ArchitectKind { return ArchitectEmpty }

// Generate implements Architect.
func (EmptyArchitect) Generate(_ *RNG, p Params) (*Draft, error) {
	return &Draft{
		Grid:        NewGrid(p.Width, p.Height, Floor),
		PlayerStart: p.center(),
	}, nil
}
