package level

import (
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Result is a finished level. It is built once by Builder.Build and never
// modified afterwards; accessors hand out copies.
type Result struct {
	grid         *Grid
	rooms        []core.Rect
	spawns       []core.Point
	playerStart  core.Point
	goal         core.Point
	goalDistance float64
	reachable    int
	architect    ArchitectKind
	theme        Theme
	prefab       *PrefabPlacement
	seed         uint64
	attempts     int
}

// Width returns the grid width.
func (r *Result) Width() int { return r.grid.Width }

// Height returns the grid height.
func (r *Result) Height() int { return r.grid.Height }

// Grid returns a copy of the level grid.
func (r *Result) Grid() *Grid { return r.grid.Clone() }

// Tile returns the tile at p. The second result is false when p is out of bounds.
func (r *Result) Tile(p core.Point) (Tile, bool) { return r.grid.At(p) }

// Index converts an in-bounds point to its tile index.
func (r *Result) Index(p core.Point) int { return r.grid.Index(p) }

// TryIndex converts p to its tile index, reporting false when p is out of bounds.
func (r *Result) TryIndex(p core.Point) (int, bool) { return r.grid.TryIndex(p) }

// PointOf converts a tile index to its coordinate.
func (r *Result) PointOf(idx int) core.Point { return r.grid.PointOf(idx) }

// Rooms returns the rooms in generation order. Room-less architects return none.
func (r *Result) Rooms() []core.Rect {
	return append([]core.Rect(nil), r.rooms...)
}

// MonsterSpawns returns the distinct monster spawn points.
func (r *Result) MonsterSpawns() []core.Point {
	return append([]core.Point(nil), r.spawns...)
}

// PlayerStart returns where the player enters the level.
func (r *Result) PlayerStart() core.Point { return r.playerStart }

// Goal returns the most distant reachable tile from the player start.
func (r *Result) Goal() core.Point { return r.goal }

// GoalDistance returns the walking distance from the player start to the goal.
func (r *Result) GoalDistance() float64 { return r.goalDistance }

// ReachableTiles returns how many tiles are reachable from the player start.
func (r *Result) ReachableTiles() int { return r.reachable }

// Architect returns the variant that laid out the level.
func (r *Result) Architect() ArchitectKind { return r.architect }

// Theme returns the presentation theme chosen for the level.
func (r *Result) Theme() Theme { return r.theme }

// Prefab returns the stamped prefab, or nil when none was placed.
func (r *Result) Prefab() *PrefabPlacement {
	if r.prefab == nil {
		return nil
	}
	cp := *r.prefab
	cp.Spawns = append([]core.Point(nil), r.prefab.Spawns...)
	return &cp
}

// Seed returns the seed of the random source the level was built from.
func (r *Result) Seed() uint64 { return r.seed }

// Attempts returns how many pipeline attempts were needed.
func (r *Result) Attempts() int { return r.attempts }

// Symbols renders the grid through the level's theme, one string per row.
func (r *Result) Symbols() []string {
	rows := make([]string, r.grid.Height)
	var sb strings.Builder
	for y := 0; y < r.grid.Height; y++ {
		sb.Reset()
		for x := 0; x < r.grid.Width; x++ {
			sb.WriteRune(r.theme.TileToSymbol(r.grid.Tiles[y*r.grid.Width+x]))
		}
		rows[y] = sb.String()
	}
	return rows
}

// Equal reports whether two results describe the same level.
func (r *Result) Equal(other *Result) bool {
	if other == nil || !r.grid.Equal(other.grid) {
		return false
	}
	if r.playerStart != other.playerStart || r.goal != other.goal ||
		r.goalDistance != other.goalDistance || r.architect != other.architect ||
		r.theme.Kind() != other.theme.Kind() {
		return false
	}
	if len(r.rooms) != len(other.rooms) || len(r.spawns) != len(other.spawns) {
		return false
	}
	for i := range r.rooms {
		if r.rooms[i] != other.rooms[i] {
			return false
		}
	}
	for i := range r.spawns {
		if r.spawns[i] != other.spawns[i] {
			return false
		}
	}
	if (r.prefab == nil) != (other.prefab == nil) {
		return false
	}
	return r.prefab == nil || r.prefab.Area == other.prefab.Area
}
