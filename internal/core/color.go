package core

// Color is the foreground color of a screen cell. Renderers map each value
// to an ANSI 256-color code.
type Color uint8

// Colors used by level palettes and overlays. ColorDefault leaves the
// terminal's own foreground untouched.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrown
	ColorGray
	ColorDarkGray // last; renderers cover every color up to here
)
