package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/level"
)

// Overlay glyphs drawn on top of the themed tiles.
const (
	GlyphPlayer  = '@'
	GlyphGoal    = '>'
	GlyphMonster = 'M'
)

// Palette contains the visual styles for one level theme.
type Palette struct {
	// Map cell colors
	Floor   core.Color
	Wall    core.Color
	Player  core.Color
	Goal    core.Color
	Monster core.Color
	Frame   core.Color

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDLegend    lipgloss.Style
}

// NewPalette returns the palette for a theme, with HUD styles bound to r.
func NewPalette(kind level.ThemeKind, r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := Palette{
		Player:  core.ColorBrightYellow,
		Goal:    core.ColorBrightCyan,
		Monster: core.ColorBrightRed,
		Frame:   core.ColorGray,

		HUDTitle:     r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     r.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     r.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: r.NewStyle().Foreground(lipgloss.Color("240")),
		HUDLegend:    r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}

	switch kind {
	case level.ThemeForest:
		p.Floor = core.ColorGreen
		p.Wall = core.ColorBrown
		p.HUDTitle = r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true) // Lime green
	default:
		p.Floor = core.ColorDarkGray
		p.Wall = core.ColorWhite
	}
	return p
}

// TileColor returns the color for a terrain tile.
func (p Palette) TileColor(t level.Tile) core.Color {
	if t == level.Floor {
		return p.Floor
	}
	return p.Wall
}
