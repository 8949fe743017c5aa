package level

import (
	"fmt"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// AutomataArchitect grows caves by smoothing random noise with a cellular
// automaton, then keeps only the cave region that contains the start.
type AutomataArchitect struct{}

// Kind implements Architect.
func (AutomataArchitect) Kind() ArchitectKind { return ArchitectAutomata }

// Generate implements Architect.
func (AutomataArchitect) Generate(rng *RNG, p Params) (*Draft, error) {
	g := NewGrid(p.Width, p.Height, Wall)

	randomNoise(g, rng, p.CaveWallChance)
	for i := 0; i < p.CaveIterations; i++ {
		smoothCaves(g)
	}
	sealBorder(g)

	start, ok := nearestFloor(g, p.center())
	if !ok {
		return nil, fmt.Errorf("%w: cave has no floor", ErrNoWalkableStart)
	}

	df := NewDistanceField(g, []int{g.Index(start)}, p.DistanceCutoff, p.Diagonals)
	df.cullUnreachable()

	return &Draft{
		Grid:        g,
		PlayerStart: start,
	}, nil
}

// randomNoise seeds every tile: a roll above wallChance becomes floor.
func randomNoise(g *Grid, rng *RNG, wallChance int) {
	for i := range g.Tiles {
		if rng.Range(0, 100) > wallChance {
			g.Tiles[i] = Floor
		} else {
			g.Tiles[i] = Wall
		}
	}
}

// smoothCaves runs one automaton pass over the interior. A tile becomes wall
// when more than four neighbours are walls or when it has none at all, which
// breaks up large open areas.
func smoothCaves(g *Grid) {
	next := make([]Tile, len(g.Tiles))
	copy(next, g.Tiles)

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			walls := countWallNeighbors(g, core.Pt(x, y))
			idx := y*g.Width + x
			if walls > 4 || walls == 0 {
				next[idx] = Wall
			} else {
				next[idx] = Floor
			}
		}
	}

	g.Tiles = next
}

// countWallNeighbors counts the walls among the eight tiles around p.
// Tiles outside the grid count as walls.
func countWallNeighbors(g *Grid, p core.Point) int {
	count := 0
	for _, off := range neighbors8 {
		t, ok := g.At(p.Add(off.X, off.Y))
		if !ok || t == Wall {
			count++
		}
	}
	return count
}

// sealBorder turns the outer ring of the grid into wall.
func sealBorder(g *Grid) {
	for x := 0; x < g.Width; x++ {
		g.Set(core.Pt(x, 0), Wall)
		g.Set(core.Pt(x, g.Height-1), Wall)
	}
	for y := 0; y < g.Height; y++ {
		g.Set(core.Pt(0, y), Wall)
		g.Set(core.Pt(g.Width-1, y), Wall)
	}
}

// nearestFloor returns the floor tile closest to target by straight-line
// distance. Ties go to the first tile in row-major order.
func nearestFloor(g *Grid, target core.Point) (core.Point, bool) {
	best := core.Point{}
	bestDist := Unreachable
	found := false
	for i, t := range g.Tiles {
		if t != Floor {
			continue
		}
		pt := g.PointOf(i)
		if d := pt.Distance(target); d < bestDist {
			best, bestDist, found = pt, d, true
		}
	}
	return best, found
}
