package physics

import (
	"errors"

	"rect-editor/internal/vector"
)

// DefaultMass is the mass given to bodies placed without an explicit preset.
const DefaultMass = 2

// ErrZeroMass is returned when a shape is built with zero mass. Mass divides gravity during integration.
var ErrZeroMass = errors.New("physics: box shape mass must be greater than zero")

// BodyType tells the integrator whether a body moves.
type BodyType int

const (
	// Static bodies are never integrated; velocity and force stay zero.
	Static BodyType = iota
	// Dynamic bodies fall under gravity.
	Dynamic
)

func (t BodyType) String() string {
	switch t {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// BoxShape is an axis-aligned box anchored at the body's position (top-left, growing right/down).
type BoxShape struct {
	Width  uint32
	Height uint32
	Mass   uint32
}

// NewBoxShape returns a shape with the given size and mass, or ErrZeroMass.
func NewBoxShape(width, height, mass uint32) (BoxShape, error) {
	if mass == 0 {
		return BoxShape{}, ErrZeroMass
	}
	return BoxShape{Width: width, Height: height, Mass: mass}, nil
}

// RigidBody is the physical state of one entity.
// Force is accumulated but not yet applied by the integrator.
type RigidBody struct {
	Position vector.Vec2[float32]
	Velocity vector.Vec2[float32]
	Force    vector.Vec2[float32]
	Shape    BoxShape
	Type     BodyType
}

// NewBody returns a body at rest at position.
func NewBody(t BodyType, position vector.Vec2[float32], shape BoxShape) RigidBody {
	return RigidBody{
		Position: position,
		Shape:    shape,
		Type:     t,
	}
}

// IsStatic reports whether the body is excluded from integration.
func (b *RigidBody) IsStatic() bool {
	return b.Type == Static
}
