package level

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// DrunkardArchitect carves caves with random walkers until enough of the map
// is floor. Floor that the centre cannot reach is filled back in after each walker.
type DrunkardArchitect struct{}

// Kind implements Architect.
func (DrunkardArchitect) Kind() ArchitectKind { return ArchitectDrunkard }

// Generate implements Architect.
func (DrunkardArchitect) Generate(rng *RNG, p Params) (*Draft, error) {
	g := NewGrid(p.Width, p.Height, Wall)
	center := p.center()
	centerIdx := g.Index(center)
	desired := int(math.Ceil(float64(g.Len()) * p.DrunkardFloorRatio))

	stagger(g, center, rng, p.DrunkardStagger)

	walkers := 0
	for g.Count(Floor) < desired {
		if walkers >= p.MaxDrunkardWalkers {
			return nil, fmt.Errorf("%w: %d of %d floor tiles after %d walkers",
				ErrFloorCoverageExhausted, g.Count(Floor), desired, walkers)
		}
		walkers++

		stagger(g, core.Pt(rng.Range(0, p.Width), rng.Range(0, p.Height)), rng, p.DrunkardStagger)
		NewDistanceField(g, []int{centerIdx}, p.DistanceCutoff, p.Diagonals).cullUnreachable()
	}

	if !g.IsFloor(center) {
		return nil, fmt.Errorf("%w: centre %v is not floor", ErrNoWalkableStart, center)
	}

	return &Draft{
		Grid:        g,
		PlayerStart: center,
	}, nil
}

// stagger walks from start, carving floor at every visited tile, until it
// leaves the grid or exceeds maxSteps.
func stagger(g *Grid, start core.Point, rng *RNG, maxSteps int) {
	pos := start
	steps := 0
	for {
		if !g.Set(pos, Floor) {
			return
		}

		switch rng.Range(0, 4) {
		case 0:
			pos.X--
		case 1:
			pos.X++
		case 2:
			pos.Y--
		default:
			pos.Y++
		}

		if !g.InBounds(pos) {
			return
		}
		steps++
		if steps > maxSteps {
			return
		}
	}
}
