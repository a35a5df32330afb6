package ui

import (
	"fmt"

	"rect-editor/internal/scene"
)

// Inspect returns the text lines shown for the selected entity: index, position, size and physics.
func Inspect(index int, e scene.Entity) []string {
	b := e.Body
	return []string{
		fmt.Sprintf("#%d %s", index, b.Type),
		fmt.Sprintf("pos: %.1f, %.1f", b.Position.X, b.Position.Y),
		fmt.Sprintf("size: %dx%d mass: %d", b.Shape.Width, b.Shape.Height, b.Shape.Mass),
		fmt.Sprintf("vel: %.2f, %.2f", b.Velocity.X, b.Velocity.Y),
		fmt.Sprintf("color: %s", FormatHexColor(e.Color)),
	}
}
