package ui

import (
	"image/color"

	"rect-editor/internal/vector"
)

// Rect is a screen-space rectangle. Contains uses the same half-open rule as scene entities.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Contains reports whether the screen point p is inside r.
func (r Rect) Contains(p vector.Vec2[int32]) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Button is a labelled clickable region drawn on top of the scene, in screen space.
// Active marks the button whose mode is currently selected.
type Button struct {
	Label  string
	Bounds Rect
	Fill   color.RGBA
	Text   color.RGBA
	Active bool
}

// HitTest returns the index of the first button under p.
func HitTest(buttons []Button, p vector.Vec2[int32]) (int, bool) {
	for i := range buttons {
		if buttons[i].Bounds.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
