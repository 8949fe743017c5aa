// Package config provides YAML-based level generation configuration,
// difficulty presets and environment-based server settings.
package config

import (
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/level"
)

// LevelConfig contains all configuration for level generation.
type LevelConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Rooms      RoomsConfig      `yaml:"rooms"`
	Caves      CavesConfig      `yaml:"caves"`
	Drunkard   DrunkardConfig   `yaml:"drunkard"`
	Spawns     SpawnsConfig     `yaml:"spawns"`
	Prefab     PrefabConfig     `yaml:"prefab"`
	Generation GenerationConfig `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the level dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomsConfig defines the rooms-and-corridors architect.
type RoomsConfig struct {
	Count       int `yaml:"count"`
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"` // exclusive
	MaxAttempts int `yaml:"max_attempts"`
}

// CavesConfig defines the cellular automata architect.
type CavesConfig struct {
	WallChance int `yaml:"wall_chance"` // percent
	Iterations int `yaml:"iterations"`
}

// DrunkardConfig defines the drunkard's walk architect.
type DrunkardConfig struct {
	Stagger    int     `yaml:"stagger"`
	FloorRatio float64 `yaml:"floor_ratio"`
	MaxWalkers int     `yaml:"max_walkers"`
}

// SpawnsConfig defines monster placement.
type SpawnsConfig struct {
	Count       int     `yaml:"count"`
	MinDistance float64 `yaml:"min_distance"`
}

// PrefabConfig defines which vault fragments are stamped and where.
type PrefabConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Names       []string `yaml:"names,omitempty"` // empty = every fragment in the vault
	Dir         string   `yaml:"dir,omitempty"`   // extra fragments on disk
	Attempts    int      `yaml:"attempts"`
	MinDistance float64  `yaml:"min_distance"`
	MaxDistance float64  `yaml:"max_distance"`
}

// GenerationConfig defines orchestrator settings.
type GenerationConfig struct {
	DistanceCutoff float64 `yaml:"distance_cutoff"`
	Diagonals      bool    `yaml:"diagonals"`
	MaxAttempts    int     `yaml:"max_attempts"`
	Architect      string  `yaml:"architect,omitempty"` // empty = random
	Theme          string  `yaml:"theme,omitempty"`     // empty = random
}

// DifficultyConfig scales monster pressure.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Level   float64       `yaml:"level"` // 0.0 = reference, 1.0 = hardest
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier   float64 `yaml:"spawn_multiplier"`   // Extra spawns at max difficulty, as a fraction of the base count
	DistanceReduction float64 `yaml:"distance_reduction"` // Safe radius removed at max difficulty
}

// minSafeRadius is the smallest spawn distance difficulty scaling may produce.
const minSafeRadius = 3.0

// SpawnCount returns the monster count after difficulty scaling.
func (c LevelConfig) SpawnCount() int {
	if !c.Difficulty.Enabled {
		return c.Spawns.Count
	}
	lvl := clampF(c.Difficulty.Level, 0.0, 1.0)
	return int(math.Round(float64(c.Spawns.Count) * (1.0 + lvl*c.Difficulty.Scaling.SpawnMultiplier)))
}

// SpawnMinDistance returns the spawn safe radius after difficulty scaling.
func (c LevelConfig) SpawnMinDistance() float64 {
	if !c.Difficulty.Enabled {
		return c.Spawns.MinDistance
	}
	lvl := clampF(c.Difficulty.Level, 0.0, 1.0)
	d := c.Spawns.MinDistance - lvl*c.Difficulty.Scaling.DistanceReduction
	return math.Max(math.Min(minSafeRadius, c.Spawns.MinDistance), d)
}

// ToParams converts the configuration to generation parameters.
func (c LevelConfig) ToParams() level.Params {
	return level.Params{
		Width:                 c.Grid.Width,
		Height:                c.Grid.Height,
		NumRooms:              c.Rooms.Count,
		MinRoomSize:           c.Rooms.MinSize,
		MaxRoomSize:           c.Rooms.MaxSize,
		MaxRoomAttempts:       c.Rooms.MaxAttempts,
		CaveWallChance:        c.Caves.WallChance,
		CaveIterations:        c.Caves.Iterations,
		DrunkardStagger:       c.Drunkard.Stagger,
		DrunkardFloorRatio:    c.Drunkard.FloorRatio,
		MaxDrunkardWalkers:    c.Drunkard.MaxWalkers,
		SpawnCount:            c.SpawnCount(),
		SpawnMinDistance:      c.SpawnMinDistance(),
		DistanceCutoff:        c.Generation.DistanceCutoff,
		Diagonals:             c.Generation.Diagonals,
		PrefabAttempts:        c.Prefab.Attempts,
		PrefabMinDistance:     c.Prefab.MinDistance,
		PrefabMaxDistance:     c.Prefab.MaxDistance,
		MaxGenerationAttempts: c.Generation.MaxAttempts,
	}
}

// Validate checks that the configuration produces usable parameters.
func (c LevelConfig) Validate() error {
	return c.ToParams().Validate()
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
