package level

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Prefab tile codes.
const (
	PrefabFloor   = '-'
	PrefabFloorV2 = '.'
	PrefabWall    = '#'
	PrefabMonster = 'M' // floor with a guaranteed monster spawn
)

// Prefab is a hand-authored rectangular fragment stamped onto a generated grid.
type Prefab struct {
	Name   string
	Width  int
	Height int
	Rows   []string // Height rows of Width tile codes
}

// NewPrefab validates rows and builds a prefab. Rows must be non-empty, equally
// long and use only the prefab tile codes.
func NewPrefab(name string, rows []string) (Prefab, error) {
	if len(rows) == 0 {
		return Prefab{}, fmt.Errorf("prefab %q: no rows", name)
	}
	width := len(rows[0])
	if width == 0 {
		return Prefab{}, fmt.Errorf("prefab %q: empty row", name)
	}
	for y, row := range rows {
		if len(row) != width {
			return Prefab{}, fmt.Errorf("prefab %q: row %d has width %d, expected %d", name, y, len(row), width)
		}
		for x, c := range row {
			if _, _, ok := decodePrefabCode(c); !ok {
				return Prefab{}, fmt.Errorf("prefab %q: unknown code %q at (%d,%d)", name, c, x, y)
			}
		}
	}
	return Prefab{
		Name:   name,
		Width:  width,
		Height: len(rows),
		Rows:   rows,
	}, nil
}

// String returns the prefab rows joined by newlines.
func (pf Prefab) String() string {
	return strings.Join(pf.Rows, "\n")
}

// MonsterCount returns the number of monster markers in the prefab.
func (pf Prefab) MonsterCount() int {
	n := 0
	for _, row := range pf.Rows {
		n += strings.Count(row, string(PrefabMonster))
	}
	return n
}

// decodePrefabCode maps a code to its tile and whether it marks a monster spawn.
func decodePrefabCode(c rune) (Tile, bool, bool) {
	switch c {
	case PrefabFloor, PrefabFloorV2:
		return Floor, false, true
	case PrefabWall:
		return Wall, false, true
	case PrefabMonster:
		return Floor, true, true
	default:
		return Wall, false, false
	}
}

// PrefabPlacement records where a prefab was stamped.
type PrefabPlacement struct {
	Name   string
	Area   core.Rect
	Spawns []core.Point // Monster markers inside Area
}

// Footprint returns the set of points covered by the placement.
func (pp *PrefabPlacement) Footprint() mapset.Set[core.Point] {
	set := mapset.New[core.Point]()
	if pp == nil {
		return set
	}
	for _, pt := range pp.Area.Points() {
		set.Put(pt)
	}
	return set
}

// ApplyPrefab tries up to p.PrefabAttempts random anchors for pf on d.Grid.
// An anchor is accepted when the footprint leaves the player start uncovered
// and contains a tile whose walking distance from the start lies strictly
// between p.PrefabMinDistance and p.PrefabMaxDistance. On success the tiles are
// overwritten, draft spawns inside the footprint are dropped, and the prefab's
// monster markers are appended to d.MonsterSpawns. Returns nil when no anchor fits.
func ApplyPrefab(rng *RNG, d *Draft, pf Prefab, p Params) *PrefabPlacement {
	g := d.Grid
	if pf.Width <= 0 || pf.Height <= 0 || pf.Width > g.Width || pf.Height > g.Height {
		return nil
	}

	startIdx, ok := g.TryIndex(d.PlayerStart)
	if !ok {
		return nil
	}
	df := NewDistanceField(g, []int{startIdx}, p.DistanceCutoff, p.Diagonals)

	for attempt := 0; attempt < p.PrefabAttempts; attempt++ {
		area := core.NewRect(
			rng.Range(0, g.Width-pf.Width),
			rng.Range(0, g.Height-pf.Height),
			pf.Width,
			pf.Height,
		)
		if area.Contains(d.PlayerStart) || !withinPrefabRange(df, area, p) {
			continue
		}
		return stampPrefab(d, pf, area)
	}
	return nil
}

// withinPrefabRange reports whether some tile of area is at an acceptable distance.
func withinPrefabRange(df *DistanceField, area core.Rect, p Params) bool {
	for _, pt := range area.Points() {
		dist, ok := df.DistanceAt(pt)
		if ok && dist > p.PrefabMinDistance && dist < p.PrefabMaxDistance {
			return true
		}
	}
	return false
}

// stampPrefab writes pf into d at area.
func stampPrefab(d *Draft, pf Prefab, area core.Rect) *PrefabPlacement {
	placement := &PrefabPlacement{Name: pf.Name, Area: area}
	footprint := placement.Footprint()

	kept := d.MonsterSpawns[:0]
	for _, sp := range d.MonsterSpawns {
		if !footprint.Has(sp) {
			kept = append(kept, sp)
		}
	}
	d.MonsterSpawns = kept

	for dy, row := range pf.Rows {
		for dx, c := range row {
			pt := core.Pt(area.X+dx, area.Y+dy)
			tile, monster, _ := decodePrefabCode(c)
			if !d.Grid.Set(pt, tile) {
				continue
			}
			if monster {
				placement.Spawns = append(placement.Spawns, pt)
			}
		}
	}
	d.MonsterSpawns = append(d.MonsterSpawns, placement.Spawns...)
	return placement
}
