package level

import (
	"fmt"
	"strings"
)

// Theme maps tile kinds to display symbols. Themes are stateless and purely
// presentational; generation never depends on which one is active.
type Theme interface {
	Kind() ThemeKind
	Name() string
	TileToSymbol(t Tile) rune
}

// ThemeKind enumerates the closed set of themes.
type ThemeKind int

const (
	ThemeDungeon ThemeKind = iota
	ThemeForest
)

// themeCount is the number of themes eligible for random selection.
const themeCount = 2

// String returns the theme's short name.
func (k ThemeKind) String() string {
	switch k {
	case ThemeDungeon:
		return "dungeon"
	case ThemeForest:
		return "forest"
	default:
		return fmt.Sprintf("theme(%d)", int(k))
	}
}

// ThemeKinds returns every theme.
func ThemeKinds() []ThemeKind {
	return []ThemeKind{ThemeDungeon, ThemeForest}
}

// ParseThemeKind maps a short name to its kind.
func ParseThemeKind(name string) (ThemeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dungeon":
		return ThemeDungeon, nil
	case "forest":
		return ThemeForest, nil
	default:
		return 0, fmt.Errorf("level: unknown theme %q", name)
	}
}

// NewTheme returns the theme for kind. Unknown kinds fall back to the dungeon theme.
func NewTheme(kind ThemeKind) Theme {
	if kind == ThemeForest {
		return ForestTheme{}
	}
	return DungeonTheme{}
}

// pickTheme draws a theme uniformly.
func pickTheme(rng *RNG) Theme {
	return NewTheme(ThemeKind(rng.Range(0, themeCount)))
}

// DungeonTheme renders stone floors and walls.
type DungeonTheme struct{}

func (DungeonTheme) Kind() ThemeKind { return ThemeDungeon }
func (DungeonTheme) Name() string    { return "dungeon" }

// TileToSymbol implements Theme.
func (DungeonTheme) TileToSymbol(t Tile) rune {
	if t == Floor {
		return '.'
	}
	return '#'
}

// ForestTheme renders grassy clearings between trees.
type ForestTheme struct{}

func (ForestTheme) Kind() ThemeKind { return ThemeForest }
func (ForestTheme) Name() string    { return "forest" }

// TileToSymbol implements Theme.
func (ForestTheme) TileToSymbol(t Tile) rune {
	if t == Floor {
		return ';'
	}
	return '"'
}
