package scene

import "rect-editor/internal/vector"

// Camera is a world-space offset. Entities are stored and hit-tested in world space;
// the camera is applied only when drawing and when reading the pointer.
type Camera struct {
	Position vector.Vec2[int32]
}

// ToLocal converts a world position to view-local coordinates.
func (c Camera) ToLocal(world vector.Vec2[int32]) vector.Vec2[int32] {
	return world.Sub(c.Position)
}

// ToWorld converts a view-local position (e.g. the pointer) to world coordinates.
func (c Camera) ToWorld(local vector.Vec2[int32]) vector.Vec2[int32] {
	return local.Add(c.Position)
}

// Pan moves the camera offset by (dx, dy).
func (c *Camera) Pan(dx, dy int32) {
	c.Position = c.Position.Add(vector.New(dx, dy))
}
