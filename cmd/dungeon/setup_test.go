package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/level"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadSetupDefaults(t *testing.T) {
	isolate(t)

	setup, err := loadSetup(setupOptions{}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadSetup failed: %v", err)
	}
	if setup.Params != level.DefaultParams() {
		t.Errorf("Params = %+v, want defaults", setup.Params)
	}
	if len(setup.Prefabs) != 1 || setup.Prefabs[0].Name != "fortress" {
		t.Errorf("Prefabs = %+v, want the fortress", setup.Prefabs)
	}
}

func TestLoadSetupOverrides(t *testing.T) {
	isolate(t)

	setup, err := loadSetup(setupOptions{
		Preset:    "easy",
		Architect: "empty",
		Theme:     "forest",
		NoPrefab:  true,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadSetup failed: %v", err)
	}
	if setup.Params.SpawnCount != 25 {
		t.Errorf("easy preset SpawnCount = %d, want 25", setup.Params.SpawnCount)
	}
	if len(setup.Prefabs) != 0 {
		t.Errorf("--no-prefab still loaded %d prefabs", len(setup.Prefabs))
	}

	res, err := level.Generate(1, setup.Params, setup.Options...)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if res.Architect() != level.ArchitectEmpty || res.Theme().Kind() != level.ThemeForest {
		t.Errorf("overrides not applied: %v / %s", res.Architect(), res.Theme().Name())
	}
}

func TestLoadSetupPrefabDir(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	data := "name: fortress\nmap: |\n  ###\n  #M#\n  ###\n"
	if err := os.WriteFile(filepath.Join(dir, "fortress.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	setup, err := loadSetup(setupOptions{PrefabDir: dir}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("loadSetup failed: %v", err)
	}
	if len(setup.Prefabs) != 1 || setup.Prefabs[0].Width != 3 {
		t.Errorf("disk prefab should replace the built-in fortress: %+v", setup.Prefabs)
	}
}

func TestLoadSetupErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		opts setupOptions
		want string
	}{
		{"unknown preset", setupOptions{Preset: "nightmare"}, "nightmare"},
		{"unknown architect", setupOptions{Architect: "castle"}, "castle"},
		{"unknown theme", setupOptions{Theme: "lava"}, "lava"},
		{"missing config", setupOptions{ConfigPath: "/nonexistent/level.yaml"}, "failed to read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSetup(tt.opts, log.New(io.Discard))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestUseColor(t *testing.T) {
	if on, err := useColor("always"); err != nil || !on {
		t.Errorf("useColor(always) = %v, %v", on, err)
	}
	if on, err := useColor("never"); err != nil || on {
		t.Errorf("useColor(never) = %v, %v", on, err)
	}
	if _, err := useColor("sometimes"); err == nil {
		t.Error("useColor(sometimes) should fail")
	}
}

func TestFormatHistory(t *testing.T) {
	out := formatHistory([]storage.LevelRecord{{
		ID: 3, Seed: 42, Architect: "rooms", Theme: "forest", Width: 80, Height: 50,
		Monsters: 50, GoalDistance: 87.4, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}})
	for _, want := range []string{"rooms", "forest", "80x50", "87", "2026-01-02 03:04"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output misses %q:\n%s", want, out)
		}
	}
}

func TestFormatStats(t *testing.T) {
	out := formatStats(map[string]*storage.ArchitectStats{
		"rooms":    {Architect: "rooms", Levels: 2, AvgRooms: 15},
		"automata": {Architect: "automata", Levels: 1},
	})
	automata := strings.Index(out, level.ArchitectAutomata.Title())
	rooms := strings.Index(out, level.ArchitectRooms.Title())
	if automata < 0 || rooms < 0 {
		t.Fatalf("stats output misses architect titles:\n%s", out)
	}
	if automata > rooms {
		t.Error("rows should be sorted by architect name")
	}
}
