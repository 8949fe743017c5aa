package core

// Viewport is the visible area of the terminal in characters.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport returns the size assumed when the terminal cannot be queried.
func DefaultViewport() Viewport {
	return Viewport{Width: 80, Height: 24}
}

// Window returns the part of a mapW x mapH map that fits in the viewport,
// centered on focus and clamped to the map edges.
func (v Viewport) Window(focus Point, mapW, mapH int) Rect {
	w := Clamp(v.Width, 0, mapW)
	h := Clamp(v.Height, 0, mapH)
	x := Clamp(focus.X-w/2, 0, mapW-w)
	y := Clamp(focus.Y-h/2, 0, mapH-h)
	return NewRect(x, y, w, h)
}
