// Package level generates dungeon levels: a walkable tile grid, rooms, a player
// start, a goal, monster spawn points and a presentation theme.
//
// Generation is single-threaded and deterministic. All randomness comes from one
// *RNG passed explicitly through every step, and the order of draws is fixed:
// architect, architect internals, prefab, theme, spawns. Changing that order
// changes the level a seed produces.
package level

import (
	"fmt"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Params configures level generation.
type Params struct {
	Width  int // Grid width in tiles
	Height int // Grid height in tiles

	// Rooms-and-corridors architect
	NumRooms        int // Target room count
	MinRoomSize     int // Minimum room width/height (inclusive)
	MaxRoomSize     int // Maximum room width/height (exclusive)
	MaxRoomAttempts int // Candidate rectangles sampled before giving up

	// Cellular automata architect
	CaveWallChance int // Percent chance a noise cell starts as wall
	CaveIterations int // Smoothing passes

	// Drunkard's walk architect
	DrunkardStagger    int     // Max steps per walker
	DrunkardFloorRatio float64 // Target floor coverage (0-1)
	MaxDrunkardWalkers int     // Walkers spawned before giving up

	// Spawn sampler
	SpawnCount       int     // Monsters to place
	SpawnMinDistance float64 // Spawns must be strictly farther than this from the start

	// Distance field
	DistanceCutoff float64 // Search depth; tiles beyond it are unreachable
	Diagonals      bool    // Allow diagonal steps

	// Prefab applier
	PrefabAttempts    int     // Anchor candidates tried before skipping the prefab
	PrefabMinDistance float64 // Footprint must contain a tile farther than this from the start
	PrefabMaxDistance float64 // ...and closer than this

	// Orchestrator
	MaxGenerationAttempts int // Whole-pipeline retries for recoverable failures
}

// DefaultParams returns the reference generation parameters (80x50, 20 rooms, 50 monsters).
func DefaultParams() Params {
	return Params{
		Width:                 80,
		Height:                50,
		NumRooms:              20,
		MinRoomSize:           3,
		MaxRoomSize:           10,
		MaxRoomAttempts:       10000,
		CaveWallChance:        55,
		CaveIterations:        10,
		DrunkardStagger:       400,
		DrunkardFloorRatio:    1.0 / 3.0,
		MaxDrunkardWalkers:    5000,
		SpawnCount:            50,
		SpawnMinDistance:      10.0,
		DistanceCutoff:        1024.0,
		Diagonals:             false,
		PrefabAttempts:        10,
		PrefabMinDistance:     20.0,
		PrefabMaxDistance:     2000.0,
		MaxGenerationAttempts: 5,
	}
}

// Validate checks parameters shared by every architect.
func (p Params) Validate() error {
	switch {
	case p.Width < 3 || p.Height < 3:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidParams, p.Width, p.Height)
	case p.SpawnCount < 0:
		return fmt.Errorf("%w: spawn count %d is negative", ErrInvalidParams, p.SpawnCount)
	case p.SpawnMinDistance < 0:
		return fmt.Errorf("%w: spawn distance %.1f is negative", ErrInvalidParams, p.SpawnMinDistance)
	case p.DistanceCutoff <= 0:
		return fmt.Errorf("%w: distance cutoff must be positive", ErrInvalidParams)
	case p.DrunkardFloorRatio < 0 || p.DrunkardFloorRatio > 1:
		return fmt.Errorf("%w: drunkard floor ratio %.2f outside [0,1]", ErrInvalidParams, p.DrunkardFloorRatio)
	case p.CaveWallChance < 0 || p.CaveWallChance > 100:
		return fmt.Errorf("%w: cave wall chance %d outside [0,100]", ErrInvalidParams, p.CaveWallChance)
	case p.MaxRoomAttempts <= 0:
		return fmt.Errorf("%w: room placement attempts %d must be positive", ErrInvalidParams, p.MaxRoomAttempts)
	case p.MaxDrunkardWalkers < 0:
		return fmt.Errorf("%w: drunkard walker limit %d is negative", ErrInvalidParams, p.MaxDrunkardWalkers)
	}
	return nil
}

// validateRooms checks the parameters used by the rooms-and-corridors architect.
func (p Params) validateRooms() error {
	switch {
	case p.NumRooms < 1:
		return fmt.Errorf("%w: room count %d must be at least 1", ErrInvalidParams, p.NumRooms)
	case p.MinRoomSize < 1 || p.MaxRoomSize <= p.MinRoomSize:
		return fmt.Errorf("%w: room size range [%d,%d) is empty", ErrInvalidParams, p.MinRoomSize, p.MaxRoomSize)
	case p.Width-p.MaxRoomSize-1 <= 1 || p.Height-p.MaxRoomSize-1 <= 1:
		return fmt.Errorf("%w: grid %dx%d too small for rooms up to %d", ErrInvalidParams, p.Width, p.Height, p.MaxRoomSize)
	}
	return nil
}

// center returns the middle tile of the grid.
func (p Params) center() core.Point {
	return core.Pt(p.Width/2, p.Height/2)
}
