package config

import (
	_ "embed"
)

//go:embed defaults/level.yaml
var defaultLevelYAML []byte

// DefaultLevelConfig returns the reference level configuration
// (80x50, 20 rooms, 50 monsters, the fortress prefab).
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Grid: GridConfig{
			Width:  80,
			Height: 50,
		},
		Rooms: RoomsConfig{
			Count:       20,
			MinSize:     3,
			MaxSize:     10,
			MaxAttempts: 10000,
		},
		Caves: CavesConfig{
			WallChance: 55,
			Iterations: 10,
		},
		Drunkard: DrunkardConfig{
			Stagger:    400,
			FloorRatio: 1.0 / 3.0,
			MaxWalkers: 5000,
		},
		Spawns: SpawnsConfig{
			Count:       50,
			MinDistance: 10.0,
		},
		Prefab: PrefabConfig{
			Enabled:     true,
			Names:       []string{"fortress"},
			Attempts:    10,
			MinDistance: 20.0,
			MaxDistance: 2000.0,
		},
		Generation: GenerationConfig{
			DistanceCutoff: 1024.0,
			Diagonals:      false,
			MaxAttempts:    5,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Level:   0.0,
			Scaling: ScalingConfig{
				SpawnMultiplier:   1.0,
				DistanceReduction: 5.0,
			},
		},
	}
}

// DefaultLevelYAML returns the embedded default level configuration.
func DefaultLevelYAML() []byte {
	return defaultLevelYAML
}
