package level

import (
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

var testFort = []string{
	"#####",
	"#-M-#",
	"#---#",
	"#-M-#",
	"##.##",
}

func TestNewPrefab(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr bool
	}{
		{"valid", testFort, false},
		{"no rows", nil, true},
		{"empty row", []string{""}, true},
		{"ragged", []string{"###", "##"}, true},
		{"unknown code", []string{"#x#"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPrefab(tt.name, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPrefab() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	pf, err := NewPrefab("fort", testFort)
	if err != nil {
		t.Fatal(err)
	}
	if pf.Width != 5 || pf.Height != 5 {
		t.Errorf("size = %dx%d, want 5x5", pf.Width, pf.Height)
	}
	if pf.MonsterCount() != 2 {
		t.Errorf("MonsterCount() = %d, want 2", pf.MonsterCount())
	}
}

func openDraft(w, h int) *Draft {
	return &Draft{
		Grid:        NewGrid(w, h, Floor),
		PlayerStart: core.Pt(w/2, h/2),
	}
}

func TestApplyPrefabStamps(t *testing.T) {
	pf, err := NewPrefab("fort", testFort)
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultParams()
	p.PrefabMinDistance = 0

	d := openDraft(40, 30)
	placement := ApplyPrefab(NewRNG(12), d, pf, p)
	if placement == nil {
		t.Fatal("prefab should fit on an open grid")
	}

	if placement.Area.W != 5 || placement.Area.H != 5 {
		t.Errorf("area = %+v", placement.Area)
	}
	if placement.Area.Contains(d.PlayerStart) {
		t.Error("prefab covers the player start")
	}
	for dy, row := range pf.Rows {
		for dx, c := range row {
			pt := core.Pt(placement.Area.X+dx, placement.Area.Y+dy)
			wantFloor := c != PrefabWall
			if d.Grid.IsFloor(pt) != wantFloor {
				t.Errorf("%v: floor=%v, want %v", pt, d.Grid.IsFloor(pt), wantFloor)
			}
		}
	}
	if len(placement.Spawns) != 2 {
		t.Errorf("got %d prefab spawns, want 2", len(placement.Spawns))
	}
	if len(d.MonsterSpawns) != 2 {
		t.Errorf("draft has %d spawns, want 2", len(d.MonsterSpawns))
	}
	if placement.Footprint().Size() != 25 {
		t.Errorf("footprint size = %d, want 25", placement.Footprint().Size())
	}
}

func TestStampPrefabOverwritesTiles(t *testing.T) {
	pf, err := NewPrefab("mixed", []string{
		"-.#",
		"M#-",
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		fill Tile
	}{
		{"over wall", Wall},
		{"over floor", Floor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Draft{Grid: NewGrid(6, 5, tt.fill)}
			area := core.NewRect(2, 1, pf.Width, pf.Height)
			placement := stampPrefab(d, pf, area)

			want := map[core.Point]Tile{
				core.Pt(2, 1): Floor,
				core.Pt(3, 1): Floor,
				core.Pt(4, 1): Wall,
				core.Pt(2, 2): Floor,
				core.Pt(3, 2): Wall,
				core.Pt(4, 2): Floor,
			}
			for pt, tile := range want {
				if got, _ := d.Grid.At(pt); got != tile {
					t.Errorf("%v = %v, want %v", pt, got, tile)
				}
			}
			if len(placement.Spawns) != 1 || placement.Spawns[0] != core.Pt(2, 2) {
				t.Errorf("spawns = %v, want [%v]", placement.Spawns, core.Pt(2, 2))
			}
			if got, _ := d.Grid.At(core.Pt(0, 0)); got != tt.fill {
				t.Error("tiles outside the footprint changed")
			}
		})
	}
}

func TestApplyPrefabNeverCoversStart(t *testing.T) {
	pf, err := NewPrefab("fort", testFort)
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultParams()
	p.PrefabMinDistance = 0

	for seed := uint64(1); seed <= 200; seed++ {
		d := openDraft(7, 7)
		placement := ApplyPrefab(NewRNG(seed), d, pf, p)
		if placement != nil && placement.Area.Contains(d.PlayerStart) {
			t.Fatalf("seed %d: prefab %+v covers start %v", seed, placement.Area, d.PlayerStart)
		}
		if !d.Grid.IsFloor(d.PlayerStart) {
			t.Fatalf("seed %d: start is no longer floor", seed)
		}
	}
}

func TestApplyPrefabTooLarge(t *testing.T) {
	pf, err := NewPrefab("fort", testFort)
	if err != nil {
		t.Fatal(err)
	}
	d := openDraft(4, 4)
	if placement := ApplyPrefab(NewRNG(1), d, pf, DefaultParams()); placement != nil {
		t.Errorf("placement = %+v, want nil", placement)
	}
}

func TestApplyPrefabDistanceWindow(t *testing.T) {
	pf, err := NewPrefab("fort", testFort)
	if err != nil {
		t.Fatal(err)
	}
	// No tile of a 12x12 open grid is more than 20 steps from the centre.
	d := openDraft(12, 12)
	before := d.Grid.Clone()
	if placement := ApplyPrefab(NewRNG(1), d, pf, DefaultParams()); placement != nil {
		t.Errorf("placement = %+v, want nil", placement)
	}
	if !d.Grid.Equal(before) {
		t.Error("grid changed although no prefab was placed")
	}
}

func TestStampPrefabDropsCoveredSpawns(t *testing.T) {
	pf, err := NewPrefab("fort", testFort)
	if err != nil {
		t.Fatal(err)
	}
	d := openDraft(20, 20)
	d.MonsterSpawns = []core.Point{core.Pt(1, 1), core.Pt(15, 15)}

	placement := stampPrefab(d, pf, core.NewRect(0, 0, 5, 5))

	if len(d.MonsterSpawns) != 3 {
		t.Fatalf("spawns = %v, want one kept plus two markers", d.MonsterSpawns)
	}
	if d.MonsterSpawns[0] != core.Pt(15, 15) {
		t.Errorf("first spawn = %v, want (15,15)", d.MonsterSpawns[0])
	}
	want := []core.Point{core.Pt(2, 1), core.Pt(2, 3)}
	for i, p := range want {
		if placement.Spawns[i] != p {
			t.Errorf("marker %d = %v, want %v", i, placement.Spawns[i], p)
		}
	}
}

func TestFootprintNilPlacement(t *testing.T) {
	var pp *PrefabPlacement
	if pp.Footprint().Size() != 0 {
		t.Error("nil placement should have an empty footprint")
	}
}

func TestThemes(t *testing.T) {
	tests := []struct {
		kind  ThemeKind
		floor rune
		wall  rune
	}{
		{ThemeDungeon, '.', '#'},
		{ThemeForest, ';', '"'},
	}
	for _, tt := range tests {
		th := NewTheme(tt.kind)
		if th.Kind() != tt.kind {
			t.Errorf("NewTheme(%v).Kind() = %v", tt.kind, th.Kind())
		}
		if got := th.TileToSymbol(Floor); got != tt.floor {
			t.Errorf("%v floor = %q, want %q", tt.kind, got, tt.floor)
		}
		if got := th.TileToSymbol(Wall); got != tt.wall {
			t.Errorf("%v wall = %q, want %q", tt.kind, got, tt.wall)
		}
		parsed, err := ParseThemeKind(th.Name())
		if err != nil || parsed != tt.kind {
			t.Errorf("ParseThemeKind(%q) = %v, %v", th.Name(), parsed, err)
		}
	}
	if _, err := ParseThemeKind("lava"); err == nil {
		t.Error("unknown theme should fail")
	}
}
