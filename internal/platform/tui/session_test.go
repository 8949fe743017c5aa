package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/level"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

func TestParseSessionRequest(t *testing.T) {
	now := time.Unix(0, 12345)
	rooms := level.ArchitectRooms

	tests := []struct {
		name      string
		args      []string
		seed      uint64
		architect *level.ArchitectKind
		wantErr   bool
	}{
		{"no args", nil, 12345, nil, false},
		{"seed only", []string{"42"}, 42, nil, false},
		{"architect only", []string{"rooms"}, 12345, &rooms, false},
		{"seed and architect", []string{"42", "rooms"}, 42, &rooms, false},
		{"architect first", []string{"ROOMS", "7"}, 7, &rooms, false},
		{"blank args skipped", []string{" ", "9"}, 9, nil, false},
		{"unknown word", []string{"castle"}, 0, nil, true},
		{"two seeds", []string{"1", "2"}, 0, nil, true},
		{"two architects", []string{"rooms", "automata"}, 0, nil, true},
		{"negative seed", []string{"-1"}, 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseSessionRequest(tt.args, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.seed != tt.seed {
				t.Errorf("seed = %d, want %d", req.seed, tt.seed)
			}
			switch {
			case tt.architect == nil && req.architect != nil:
				t.Errorf("architect = %v, want none", *req.architect)
			case tt.architect != nil && (req.architect == nil || *req.architect != *tt.architect):
				t.Errorf("architect = %v, want %v", req.architect, *tt.architect)
			}
		})
	}
}

func TestRenderRequestRecordsLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	p := level.DefaultParams()
	p.Width, p.Height = 20, 20
	p.SpawnCount = 3

	empty := level.ArchitectEmpty
	srv := &SSHServer{
		config: SSHServerConfig{Params: p},
		store:  store,
		logger: log.New(io.Discard),
		now:    time.Now,
	}

	out, err := srv.renderRequest(sessionRequest{seed: 11, architect: &empty}, "alice", PreviewOptions{Overlays: true, HUD: true})
	if err != nil {
		t.Fatalf("renderRequest failed: %v", err)
	}
	if !strings.Contains(out, "Seed 11") {
		t.Errorf("preview misses the seed:\n%s", out)
	}

	levels, err := store.LevelsBySeed(11)
	if err != nil {
		t.Fatalf("LevelsBySeed() failed: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("got %d recorded levels, want 1", len(levels))
	}
	if levels[0].Source != "alice" || levels[0].Architect != "empty" {
		t.Errorf("recorded %+v", levels[0])
	}
}

func TestRenderRequestInvalidParams(t *testing.T) {
	p := level.DefaultParams()
	p.Width = 0

	srv := &SSHServer{config: SSHServerConfig{Params: p}, logger: log.New(io.Discard), now: time.Now}
	if _, err := srv.renderRequest(sessionRequest{seed: 1}, "bob", PreviewOptions{}); err == nil {
		t.Fatal("expected an error for invalid params")
	}
}
