package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/level"
)

// hudLines is the number of text lines printed under the map when HUD is on.
const hudLines = 3

// PreviewOptions controls how a level is rendered.
type PreviewOptions struct {
	// Viewport is the terminal area available for the whole preview,
	// including the frame and HUD. A zero viewport shows the full level.
	Viewport core.Viewport

	// Color enables ANSI styling.
	Color bool

	// Overlays draws the player start, goal and monster spawns.
	Overlays bool

	// HUD prints level details and a legend below the map.
	HUD bool

	// Renderer is used for styling. Nil uses lipgloss' default renderer.
	Renderer *lipgloss.Renderer
}

// RenderPreview draws a framed view of the level centered on the player start.
func RenderPreview(res *level.Result, opts PreviewOptions) string {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	pal := NewPalette(res.Theme().Kind(), r)

	extra := 0
	if opts.HUD {
		extra = hudLines
	}

	view := opts.Viewport
	if view.Width <= 0 || view.Height <= 0 {
		view = core.Viewport{Width: res.Width() + 2, Height: res.Height() + 2 + extra}
	}
	inner := core.Viewport{Width: view.Width - 2, Height: view.Height - 2 - extra}
	window := inner.Window(res.PlayerStart(), res.Width(), res.Height())

	screen := core.NewScreen(window.W+2, window.H+2)
	screen.DrawBox(core.NewRect(0, 0, window.W+2, window.H+2), pal.Frame)
	DrawLevel(screen, res, window, core.Pt(1, 1), pal, opts.Overlays)

	var out string
	if opts.Color {
		out = RenderScreen(screen, r)
	} else {
		out = screen.String()
	}
	if opts.HUD {
		out += "\n" + renderHUD(res, pal, opts.Color)
	}
	return out
}

// DrawLevel copies the window of the level onto the screen at the given
// offset. Overlay glyphs are drawn in priority order: monsters, goal, player.
func DrawLevel(s *core.Screen, res *level.Result, window core.Rect, at core.Point, pal Palette, overlays bool) {
	theme := res.Theme()
	for y := 0; y < window.H; y++ {
		for x := 0; x < window.W; x++ {
			t, ok := res.Tile(core.Pt(window.X+x, window.Y+y))
			if !ok {
				continue
			}
			s.SetColored(at.X+x, at.Y+y, theme.TileToSymbol(t), pal.TileColor(t))
		}
	}

	if !overlays {
		return
	}

	plot := func(p core.Point, glyph rune, c core.Color) {
		if window.Contains(p) {
			s.SetColored(at.X+p.X-window.X, at.Y+p.Y-window.Y, glyph, c)
		}
	}
	for _, m := range res.MonsterSpawns() {
		plot(m, GlyphMonster, pal.Monster)
	}
	plot(res.Goal(), GlyphGoal, pal.Goal)
	plot(res.PlayerStart(), GlyphPlayer, pal.Player)
}

// hudField is one label/value pair on the HUD.
type hudField struct {
	label string
	value string
}

func summaryFields(res *level.Result) []hudField {
	prefab := "none"
	if pp := res.Prefab(); pp != nil {
		prefab = pp.Name
	}
	return []hudField{
		{"rooms", fmt.Sprint(len(res.Rooms()))},
		{"monsters", fmt.Sprint(len(res.MonsterSpawns()))},
		{"goal", fmt.Sprintf("%v %.0f steps", res.Goal(), res.GoalDistance())},
		{"reachable", fmt.Sprint(res.ReachableTiles())},
		{"prefab", prefab},
	}
}

func renderHUD(res *level.Result, pal Palette, color bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}
	sep := style(pal.HUDSeparator, " │ ")

	title := []string{
		style(pal.HUDTitle, fmt.Sprintf("Seed %d", res.Seed())),
		style(pal.HUDValue, res.Architect().Title()),
		style(pal.HUDValue, res.Theme().Name()),
	}

	var details []string
	for _, f := range summaryFields(res) {
		details = append(details, style(pal.HUDLabel, f.label+" ")+style(pal.HUDValue, f.value))
	}

	legend := fmt.Sprintf("%c player  %c goal  %c monster", GlyphPlayer, GlyphGoal, GlyphMonster)

	return strings.Join([]string{
		strings.Join(title, sep),
		strings.Join(details, sep),
		style(pal.HUDLegend, legend),
	}, "\n")
}
