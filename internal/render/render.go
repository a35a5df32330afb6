// Package render defines what a controller hands to the drawing backend each frame.
package render

import (
	"rect-editor/internal/scene"
	"rect-editor/internal/ui"
)

// Frame is a read-only description of one rendered frame.
// Entities are in world space; the sink applies Camera.
type Frame struct {
	Entities  []scene.Entity
	Camera    scene.Camera
	Selection int // -1 when nothing is selected
	Buttons   []ui.Button
	Status    string
	Inspector []string
}

// Sink draws frames.
type Sink interface {
	DrawScene(entities []scene.Entity, camera scene.Camera, selection int)
	DrawUI(buttons []ui.Button, status string, inspector []string)
	Present()
}

// Draw sends f to s: scene first, then UI on top, then present.
func Draw(s Sink, f Frame) {
	s.DrawScene(f.Entities, f.Camera, f.Selection)
	s.DrawUI(f.Buttons, f.Status, f.Inspector)
	s.Present()
}
