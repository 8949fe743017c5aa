package level

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

func TestParseArchitectKind(t *testing.T) {
	for _, kind := range ArchitectKinds() {
		got, err := ParseArchitectKind(kind.String())
		if err != nil {
			t.Errorf("ParseArchitectKind(%q) failed: %v", kind, err)
			continue
		}
		if got != kind {
			t.Errorf("ParseArchitectKind(%q) = %v", kind, got)
		}
	}
	if got, err := ParseArchitectKind("  Rooms "); err != nil || got != ArchitectRooms {
		t.Errorf("ParseArchitectKind should trim and ignore case, got %v, %v", got, err)
	}
	if _, err := ParseArchitectKind("bsp"); err == nil {
		t.Error("unknown architect should fail")
	}
}

func TestNewArchitectKinds(t *testing.T) {
	for _, kind := range ArchitectKinds() {
		a, err := NewArchitect(kind)
		if err != nil {
			t.Fatalf("NewArchitect(%v) failed: %v", kind, err)
		}
		if a.Kind() != kind {
			t.Errorf("NewArchitect(%v).Kind() = %v", kind, a.Kind())
		}
	}
	if _, err := NewArchitect(ArchitectKind(42)); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestPickArchitectNeverEmpty(t *testing.T) {
	rng := NewRNG(1)
	seen := make(map[ArchitectKind]int)
	for i := 0; i < 3000; i++ {
		seen[pickArchitect(rng)]++
	}
	if seen[ArchitectEmpty] != 0 {
		t.Error("empty architect must not be picked at random")
	}
	for _, kind := range []ArchitectKind{ArchitectAutomata, ArchitectDrunkard, ArchitectRooms} {
		if seen[kind] == 0 {
			t.Errorf("%v was never picked", kind)
		}
	}
}

// Consecutive small seeds must spread their first pick evenly.
func TestPickArchitectUniformAcrossSeeds(t *testing.T) {
	const seeds = 3000
	counts := make(map[ArchitectKind]int)
	for seed := uint64(1); seed <= seeds; seed++ {
		counts[pickArchitect(NewRNG(seed))]++
	}
	if counts[ArchitectEmpty] != 0 {
		t.Error("empty architect must not be picked at random")
	}

	expected := float64(seeds) / randomArchitects
	chi2 := 0.0
	for _, kind := range []ArchitectKind{ArchitectAutomata, ArchitectDrunkard, ArchitectRooms} {
		if counts[kind] == 0 {
			t.Errorf("%v was never the first pick", kind)
		}
		d := float64(counts[kind]) - expected
		chi2 += d * d / expected
	}
	// 13.82 is the chi-square critical value for 2 degrees of freedom at p=0.001.
	if chi2 > 13.82 {
		t.Errorf("first picks are skewed: counts %v, chi-square %.2f", counts, chi2)
	}
}

func TestRoomsArchitectReferenceLevel(t *testing.T) {
	p := DefaultParams()
	draft, err := RoomsArchitect{}.Generate(NewRNG(2024), p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(draft.Rooms) != 20 {
		t.Fatalf("got %d rooms, want 20", len(draft.Rooms))
	}
	for i, a := range draft.Rooms {
		if a.X < 1 || a.Y < 1 || a.Right() > p.Width-1 || a.Bottom() > p.Height-1 {
			t.Errorf("room %d %+v leaves the interior", i, a)
		}
		if a.W < p.MinRoomSize || a.W >= p.MaxRoomSize || a.H < p.MinRoomSize || a.H >= p.MaxRoomSize {
			t.Errorf("room %d %+v has size outside [%d,%d)", i, a, p.MinRoomSize, p.MaxRoomSize)
		}
		for j := i + 1; j < len(draft.Rooms); j++ {
			if a.Intersects(draft.Rooms[j]) {
				t.Errorf("rooms %d and %d overlap", i, j)
			}
		}
		for _, pt := range a.Points() {
			if !draft.Grid.IsFloor(pt) {
				t.Fatalf("room %d tile %v is not floor", i, pt)
			}
		}
	}

	if draft.PlayerStart != draft.Rooms[0].Center() {
		t.Errorf("start = %v, want first room center %v", draft.PlayerStart, draft.Rooms[0].Center())
	}
	if !draft.Grid.IsFloor(draft.PlayerStart) {
		t.Error("start must be floor")
	}

	df := NewDistanceField(draft.Grid, []int{draft.Grid.Index(draft.PlayerStart)}, 1e9, false)
	if df.ReachableCount() != draft.Grid.Count(Floor) {
		t.Errorf("%d of %d floor tiles reachable", df.ReachableCount(), draft.Grid.Count(Floor))
	}
}

func TestRoomsArchitectExhausted(t *testing.T) {
	p := DefaultParams()
	p.MaxRoomAttempts = 5

	_, err := RoomsArchitect{}.Generate(NewRNG(1), p)
	if !errors.Is(err, ErrRoomPlacementExhausted) {
		t.Errorf("err = %v, want ErrRoomPlacementExhausted", err)
	}
}

func TestRoomsArchitectInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
	}{
		{"grid too narrow", func(p *Params) { p.Width = 12 }},
		{"grid too short", func(p *Params) { p.Height = 11 }},
		{"empty size range", func(p *Params) { p.MaxRoomSize = p.MinRoomSize }},
		{"no rooms", func(p *Params) { p.NumRooms = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			_, err := RoomsArchitect{}.Generate(NewRNG(1), p)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("err = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestConnectRoomsStableOrder(t *testing.T) {
	// Equal center x: the stable sort must keep acceptance order.
	rooms := []core.Rect{
		core.NewRect(10, 2, 3, 3),
		core.NewRect(10, 10, 3, 3),
		core.NewRect(2, 6, 3, 3),
	}
	g := NewGrid(20, 20, Wall)
	for _, r := range rooms {
		carveRoom(g, r)
	}
	connectRooms(g, rooms, NewRNG(5))

	df := NewDistanceField(g, []int{g.Index(rooms[0].Center())}, 1e9, false)
	for _, r := range rooms {
		if !df.Reachable(g.Index(r.Center())) {
			t.Errorf("room %+v is not connected", r)
		}
	}
	if rooms[0].X != 10 || rooms[2].X != 2 {
		t.Error("connectRooms must not reorder the caller's slice")
	}
}

func TestCarveRoomStaysInsideBorder(t *testing.T) {
	g := NewGrid(6, 6, Wall)
	carveRoom(g, core.NewRect(0, 0, 6, 6))

	for _, pt := range core.NewRect(0, 0, 6, 6).Points() {
		border := pt.X == 0 || pt.Y == 0 || pt.X == 5 || pt.Y == 5
		if border == g.IsFloor(pt) {
			t.Errorf("%v floor=%v, border=%v", pt, g.IsFloor(pt), border)
		}
	}
}

func TestAutomataArchitect(t *testing.T) {
	p := DefaultParams()
	draft, err := AutomataArchitect{}.Generate(NewRNG(31337), p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g := draft.Grid

	if !g.IsFloor(draft.PlayerStart) {
		t.Fatal("start must be floor")
	}
	for x := 0; x < g.Width; x++ {
		if g.IsFloor(core.Pt(x, 0)) || g.IsFloor(core.Pt(x, g.Height-1)) {
			t.Fatalf("border column %d is open", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.IsFloor(core.Pt(0, y)) || g.IsFloor(core.Pt(g.Width-1, y)) {
			t.Fatalf("border row %d is open", y)
		}
	}

	df := NewDistanceField(g, []int{g.Index(draft.PlayerStart)}, p.DistanceCutoff, p.Diagonals)
	if df.ReachableCount() != g.Count(Floor) {
		t.Errorf("%d of %d floor tiles reachable", df.ReachableCount(), g.Count(Floor))
	}
	if len(draft.Rooms) != 0 {
		t.Error("automata should not produce rooms")
	}
}

func TestCountWallNeighbors(t *testing.T) {
	g := NewGrid(3, 3, Floor)

	tests := []struct {
		at   core.Point
		want int
	}{
		{core.Pt(1, 1), 0},
		{core.Pt(0, 0), 5},
		{core.Pt(1, 0), 3},
	}
	for _, tt := range tests {
		if got := countWallNeighbors(g, tt.at); got != tt.want {
			t.Errorf("countWallNeighbors(%v) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestSmoothCavesOpensPockets(t *testing.T) {
	// A lone interior floor tile surrounded by floor has no wall neighbours and
	// turns into wall.
	g := NewGrid(5, 5, Floor)
	smoothCaves(g)
	if g.IsFloor(core.Pt(2, 2)) {
		t.Error("open centre should become wall")
	}
	if !g.IsFloor(core.Pt(0, 0)) {
		t.Error("border tiles are left alone")
	}
}

func TestDrunkardArchitect(t *testing.T) {
	p := DefaultParams()
	draft, err := DrunkardArchitect{}.Generate(NewRNG(8), p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g := draft.Grid

	desired := int(math.Ceil(float64(g.Len()) * p.DrunkardFloorRatio))
	if g.Count(Floor) < desired {
		t.Errorf("floor = %d, want at least %d", g.Count(Floor), desired)
	}
	if draft.PlayerStart != core.Pt(p.Width/2, p.Height/2) {
		t.Errorf("start = %v, want grid centre", draft.PlayerStart)
	}
	if !g.IsFloor(draft.PlayerStart) {
		t.Fatal("start must be floor")
	}

	df := NewDistanceField(g, []int{g.Index(draft.PlayerStart)}, p.DistanceCutoff, p.Diagonals)
	if df.ReachableCount() != g.Count(Floor) {
		t.Errorf("%d of %d floor tiles reachable", df.ReachableCount(), g.Count(Floor))
	}
}

func TestDrunkardArchitectExhausted(t *testing.T) {
	p := DefaultParams()
	p.DrunkardFloorRatio = 1
	p.MaxDrunkardWalkers = 0

	_, err := DrunkardArchitect{}.Generate(NewRNG(8), p)
	if !errors.Is(err, ErrFloorCoverageExhausted) {
		t.Errorf("err = %v, want ErrFloorCoverageExhausted", err)
	}
}

func TestEmptyArchitect(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 20, 10

	rng := NewRNG(3)
	draft, err := EmptyArchitect{}.Generate(rng, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if draft.Grid.Count(Floor) != 200 {
		t.Errorf("floor = %d, want 200", draft.Grid.Count(Floor))
	}
	if draft.PlayerStart != core.Pt(10, 5) {
		t.Errorf("start = %v, want (10,5)", draft.PlayerStart)
	}
	if rng.Next() != NewRNG(3).Next() {
		t.Error("empty architect must not draw from the rng")
	}
}
