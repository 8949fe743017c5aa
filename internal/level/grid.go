package level

import (
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Walkable reports whether entities can stand on the tile.
func (t Tile) Walkable() bool {
	return t == Floor
}

// Grid is the level map as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*Width + x.
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile // Flat array of tiles, length Width*Height
}

// NewGrid creates a grid with every tile set to fill.
func NewGrid(width, height int, fill Tile) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
	g.Fill(fill)
	return g
}

// Fill sets every tile to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.Tiles {
		g.Tiles[i] = t
	}
}

// Len returns the number of tiles in the grid.
func (g *Grid) Len() int {
	return len(g.Tiles)
}

// InBounds returns true if the point is within the grid boundaries.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index converts an in-bounds point to a flat index without checking bounds.
// Use TryIndex for points that may lie outside the grid.
func (g *Grid) Index(p core.Point) int {
	return p.Y*g.Width + p.X
}

// TryIndex converts a point to a flat index.
// The second result is false when the point lies outside the grid.
func (g *Grid) TryIndex(p core.Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.Index(p), true
}

// PointOf converts a flat index back to its coordinate.
func (g *Grid) PointOf(idx int) core.Point {
	return core.Point{X: idx % g.Width, Y: idx / g.Width}
}

// At returns the tile at p. The second result is false when p is out of bounds.
func (g *Grid) At(p core.Point) (Tile, bool) {
	idx, ok := g.TryIndex(p)
	if !ok {
		return Wall, false
	}
	return g.Tiles[idx], true
}

// IsFloor returns true if p is in bounds and walkable.
func (g *Grid) IsFloor(p core.Point) bool {
	t, ok := g.At(p)
	return ok && t == Floor
}

// Set writes t at p. Out-of-bounds writes are refused and return false.
func (g *Grid) Set(p core.Point, t Tile) bool {
	idx, ok := g.TryIndex(p)
	if !ok {
		return false
	}
	g.Tiles[idx] = t
	return true
}

// Count returns the number of tiles of kind t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Tiles:  tiles,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, t := range g.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '.' for floor and '#' for wall, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.Tiles) + g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y*g.Width+x] == Floor {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

// carveHorizontal sets every in-bounds tile between x1 and x2 (inclusive) on row y to Floor.
func (g *Grid) carveHorizontal(x1, x2, y int) {
	for x := core.Min(x1, x2); x <= core.Max(x1, x2); x++ {
		g.Set(core.Pt(x, y), Floor)
	}
}

// carveVertical sets every in-bounds tile between y1 and y2 (inclusive) on column x to Floor.
func (g *Grid) carveVertical(y1, y2, x int) {
	for y := core.Min(y1, y2); y <= core.Max(y1, y2); y++ {
		g.Set(core.Pt(x, y), Floor)
	}
}

// neighbors4 and neighbors8 are the step offsets used by the distance field and
// region culling.
var (
	neighbors4 = [...]core.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	neighbors8 = [...]core.Point{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
)
