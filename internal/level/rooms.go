package level

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// RoomsArchitect scatters non-overlapping rectangular rooms and joins them with
// L-shaped corridors in left-to-right order.
type RoomsArchitect struct{}

// Kind implements Architect.
func (RoomsArchitect) Kind() ArchitectKind { return ArchitectRooms }

// Generate implements Architect.
func (RoomsArchitect) Generate(rng *RNG, p Params) (*Draft, error) {
	if err := p.validateRooms(); err != nil {
		return nil, err
	}

	g := NewGrid(p.Width, p.Height, Wall)
	rooms, err := placeRooms(g, rng, p)
	if err != nil {
		return nil, err
	}
	connectRooms(g, rooms, rng)

	start := rooms[0].Center()
	if !g.IsFloor(start) {
		return nil, fmt.Errorf("%w: first room center %v is not floor", ErrNoWalkableStart, start)
	}

	return &Draft{
		Grid:        g,
		Rooms:       rooms,
		PlayerStart: start,
	}, nil
}

// placeRooms samples candidate rooms until p.NumRooms fit without overlapping,
// carving each accepted room into g.
func placeRooms(g *Grid, rng *RNG, p Params) ([]core.Rect, error) {
	rooms := make([]core.Rect, 0, p.NumRooms)

	for attempts := 0; len(rooms) < p.NumRooms; attempts++ {
		if attempts >= p.MaxRoomAttempts {
			return nil, fmt.Errorf("%w: placed %d of %d rooms in %d attempts",
				ErrRoomPlacementExhausted, len(rooms), p.NumRooms, attempts)
		}

		room := core.NewRect(
			rng.Range(1, p.Width-p.MaxRoomSize-1),
			rng.Range(1, p.Height-p.MaxRoomSize-1),
			rng.Range(p.MinRoomSize, p.MaxRoomSize),
			rng.Range(p.MinRoomSize, p.MaxRoomSize),
		)

		overlap := false
		for _, r := range rooms {
			if r.Intersects(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		carveRoom(g, room)
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// carveRoom turns every room tile strictly inside the grid border into floor.
func carveRoom(g *Grid, room core.Rect) {
	for _, pt := range room.Points() {
		if pt.X > 0 && pt.X < g.Width-1 && pt.Y > 0 && pt.Y < g.Height-1 {
			g.Set(pt, Floor)
		}
	}
}

// connectRooms sorts rooms by center x and digs an L-shaped corridor between
// each consecutive pair. A coin flip picks which leg is dug first.
func connectRooms(g *Grid, rooms []core.Rect, rng *RNG) {
	sorted := make([]core.Rect, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Center().X < sorted[j].Center().X
	})

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Center()
		next := sorted[i].Center()

		if rng.Range(0, 2) == 1 {
			g.carveHorizontal(prev.X, next.X, prev.Y)
			g.carveVertical(prev.Y, next.Y, next.X)
		} else {
			g.carveVertical(prev.Y, next.Y, prev.X)
			g.carveHorizontal(prev.X, next.X, next.Y)
		}
	}
}
