package level

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// SpawnSample is the outcome of SampleSpawns.
type SpawnSample struct {
	Points     []core.Point // Distinct spawn points in draw order
	Candidates int          // Size of the candidate pool
	Shortfall  int          // Requested spawns that could not be placed
}

// SpawnCandidates returns, in row-major order, every floor tile strictly
// farther than minDist (straight-line) from start that is not in exclude.
func SpawnCandidates(g *Grid, start core.Point, minDist float64, exclude mapset.Set[core.Point]) []core.Point {
	candidates := make([]core.Point, 0)
	for i, t := range g.Tiles {
		if t != Floor {
			continue
		}
		pt := g.PointOf(i)
		if pt.Distance(start) <= minDist || exclude.Has(pt) {
			continue
		}
		candidates = append(candidates, pt)
	}
	return candidates
}

// SampleSpawns draws count distinct spawn points uniformly without replacement
// from the spawn candidates. When fewer candidates exist, all of them are
// returned (in draw order) and the missing number is reported as Shortfall.
func SampleSpawns(rng *RNG, g *Grid, start core.Point, count int, minDist float64, exclude mapset.Set[core.Point]) SpawnSample {
	pool := SpawnCandidates(g, start, minDist, exclude)
	sample := SpawnSample{Candidates: len(pool)}

	n := core.Min(count, len(pool))
	if n < 0 {
		n = 0
	}
	sample.Shortfall = count - n
	if sample.Shortfall < 0 {
		sample.Shortfall = 0
	}

	sample.Points = make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		pick := rng.Intn(len(pool))
		sample.Points = append(sample.Points, pool[pick])
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	return sample
}
