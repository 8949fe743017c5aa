package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/level"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func emptyLevel(t *testing.T, seed uint64) *level.Result {
	t.Helper()
	p := level.DefaultParams()
	p.Width, p.Height = 20, 20
	p.SpawnCount = 5
	res, err := level.Generate(seed, p, level.WithArchitect(level.ArchitectEmpty))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordFromResult(t *testing.T) {
	res := emptyLevel(t, 7)
	rec := RecordFromResult(res, "alice")

	if rec.Seed != 7 || rec.Architect != "empty" || rec.Source != "alice" {
		t.Errorf("unexpected record header: %+v", rec)
	}
	if rec.Width != 20 || rec.Height != 20 {
		t.Errorf("size = %dx%d, want 20x20", rec.Width, rec.Height)
	}
	if rec.Monsters != len(res.MonsterSpawns()) || rec.GoalDistance != res.GoalDistance() {
		t.Errorf("record does not mirror the result: %+v", rec)
	}
	rows := rec.Rows()
	if len(rows) != 20 || rows[0] != res.Symbols()[0] {
		t.Errorf("layout rows = %d, first %q", len(rows), rows[0])
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := RecordFromResult(emptyLevel(t, 42), "")
	id, err := store.SaveLevel(rec)
	if err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}

	got, err := store.LevelByID(id)
	if err != nil {
		t.Fatalf("LevelByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved level not found")
	}
	if got.Seed != 42 || got.Architect != rec.Architect || got.Theme != rec.Theme {
		t.Errorf("got %+v", got)
	}
	if got.Source != "cli" {
		t.Errorf("empty source should default to cli, got %q", got.Source)
	}
	if got.Layout != rec.Layout {
		t.Error("layout changed on round trip")
	}
	if got.Prefab != "" {
		t.Errorf("Prefab = %q, want empty", got.Prefab)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.LevelByID(id + 100)
	if err != nil || missing != nil {
		t.Errorf("LevelByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreLargeSeed(t *testing.T) {
	store := openTestStore(t)

	const seed = ^uint64(0) - 5
	rec := LevelRecord{Seed: seed, Architect: "rooms", Theme: "dungeon", Width: 1, Height: 1, Layout: "."}
	if _, err := store.SaveLevel(rec); err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}

	levels, err := store.LevelsBySeed(seed)
	if err != nil {
		t.Fatalf("LevelsBySeed() failed: %v", err)
	}
	if len(levels) != 1 || levels[0].Seed != seed {
		t.Errorf("LevelsBySeed(%d) = %+v", seed, levels)
	}
}

func TestStoreRecentLevelsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		rec := LevelRecord{Seed: uint64(i), Architect: "rooms", Theme: "dungeon", Layout: "#"}
		if _, err := store.SaveLevel(rec); err != nil {
			t.Fatalf("SaveLevel() failed: %v", err)
		}
	}

	levels, err := store.RecentLevels(3)
	if err != nil {
		t.Fatalf("RecentLevels() failed: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("Expected 3 levels with limit, got %d", len(levels))
	}
	// Newest first
	if levels[0].Seed != 4 || levels[1].Seed != 3 || levels[2].Seed != 2 {
		t.Errorf("Levels not in expected order: %+v", levels)
	}
}

func TestStoreLevelsBySeed(t *testing.T) {
	store := openTestStore(t)

	for _, seed := range []uint64{1, 2, 1} {
		if _, err := store.SaveLevel(RecordFromResult(emptyLevel(t, seed), "cli")); err != nil {
			t.Fatalf("SaveLevel() failed: %v", err)
		}
	}

	levels, err := store.LevelsBySeed(1)
	if err != nil {
		t.Fatalf("LevelsBySeed() failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels for seed 1, got %d", len(levels))
	}
	if levels[0].Layout != levels[1].Layout {
		t.Error("the same seed should store the same layout")
	}
}

func TestStoreArchitectStats(t *testing.T) {
	store := openTestStore(t)

	records := []LevelRecord{
		{Architect: "rooms", Theme: "dungeon", Rooms: 10, Monsters: 4, GoalDistance: 20, Layout: "#"},
		{Architect: "rooms", Theme: "forest", Rooms: 20, Monsters: 6, GoalDistance: 40, Layout: "#"},
		{Architect: "automata", Theme: "dungeon", Monsters: 3, GoalDistance: 15, Layout: "#"},
	}
	for _, rec := range records {
		if _, err := store.SaveLevel(rec); err != nil {
			t.Fatalf("SaveLevel() failed: %v", err)
		}
	}

	stats, err := store.ArchitectStats()
	if err != nil {
		t.Fatalf("ArchitectStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 architects, got %d", len(stats))
	}

	rooms := stats["rooms"]
	if rooms == nil {
		t.Fatal("missing rooms stats")
	}
	if rooms.Levels != 2 || rooms.AvgRooms != 15 || rooms.AvgMonsters != 5 {
		t.Errorf("rooms stats = %+v", rooms)
	}
	if rooms.AvgGoalDistance != 30 || rooms.MaxGoalDistance != 40 {
		t.Errorf("rooms distance stats = %+v", rooms)
	}
	if stats["automata"].Levels != 1 {
		t.Errorf("automata stats = %+v", stats["automata"])
	}
}

func TestStoreClearLevels(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveLevel(LevelRecord{Architect: "rooms", Theme: "dungeon", Layout: "#"}); err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}
	if err := store.ClearLevels(); err != nil {
		t.Fatalf("ClearLevels() failed: %v", err)
	}

	levels, err := store.RecentLevels(10)
	if err != nil {
		t.Fatalf("RecentLevels() failed: %v", err)
	}
	if len(levels) != 0 {
		t.Errorf("Expected empty catalog after clear, got %d", len(levels))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenError(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(filepath.Join(blocker, "test.db"))
	if err == nil {
		t.Fatal("expected error when the parent is a file")
	}
	if !strings.HasPrefix(err.Error(), "storage:") {
		t.Errorf("error should carry the storage prefix: %v", err)
	}
}
