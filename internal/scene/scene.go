package scene

import (
	"fmt"
	"image/color"

	"rect-editor/internal/physics"
	"rect-editor/internal/vector"

	"github.com/jinzhu/copier"
)

// Entity is one placed rectangle: a rigid body and the colour it is drawn with.
type Entity struct {
	Body  physics.RigidBody
	Color color.RGBA
}

// Contains reports whether the world point p lies inside the entity's box.
// Left and top edges are inside, right and bottom edges are not.
func (e *Entity) Contains(p vector.Vec2[int32]) bool {
	x := int32(e.Body.Position.X)
	y := int32(e.Body.Position.Y)
	w := int32(e.Body.Shape.Width)
	h := int32(e.Body.Shape.Height)
	return p.X >= x && p.X < x+w && p.Y >= y && p.Y < y+h
}

// Preset is the fixed size, mass and colour a placement tool stamps into the scene.
type Preset struct {
	Width  uint32
	Height uint32
	Mass   uint32
	Color  color.RGBA
}

// Scene holds entities in insertion order (which is also draw order) and one camera.
// Entities are only ever appended, so an index stays valid for the life of the scene.
type Scene struct {
	Entities []Entity
	Camera   Camera
}

// New returns an empty scene with the camera at the origin.
func New() *Scene {
	return &Scene{}
}

// Add appends a body of default mass at world position (x, y) and returns its index.
func (s *Scene) Add(t physics.BodyType, x, y int32, w, h uint32, c color.RGBA) int {
	shape := physics.BoxShape{Width: w, Height: h, Mass: physics.DefaultMass}
	return s.push(t, vector.New(x, y), shape, c)
}

// Place appends a body built from preset p at world position pos.
// A zero-mass preset is rejected and the scene is left unchanged.
func (s *Scene) Place(t physics.BodyType, pos vector.Vec2[int32], p Preset) (int, error) {
	shape, err := physics.NewBoxShape(p.Width, p.Height, p.Mass)
	if err != nil {
		return -1, err
	}
	return s.push(t, pos, shape, p.Color), nil
}

func (s *Scene) push(t physics.BodyType, pos vector.Vec2[int32], shape physics.BoxShape, c color.RGBA) int {
	body := physics.NewBody(t, vector.New(float32(pos.X), float32(pos.Y)), shape)
	s.Entities = append(s.Entities, Entity{Body: body, Color: c})
	return len(s.Entities) - 1
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.Entities)
}

// Entity returns the entity at index i.
func (s *Scene) Entity(i int) (Entity, bool) {
	if i < 0 || i >= len(s.Entities) {
		return Entity{}, false
	}
	return s.Entities[i], true
}

// HitTest returns the lowest-index entity containing the world point p.
// An earlier entity wins even when a later one is drawn on top of it.
func (s *Scene) HitTest(p vector.Vec2[int32]) (int, bool) {
	for i := range s.Entities {
		if s.Entities[i].Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// RenderOrder returns the entities oldest first. The slice is shared; callers must not modify it.
func (s *Scene) RenderOrder() []Entity {
	return s.Entities
}

// Bodies returns pointers to every entity's rigid body, reusing buf.
// The pointers stay valid until the next append to the scene.
func (s *Scene) Bodies(buf []*physics.RigidBody) []*physics.RigidBody {
	buf = buf[:0]
	for i := range s.Entities {
		buf = append(buf, &s.Entities[i].Body)
	}
	return buf
}

// Snapshot returns a deep copy that shares no memory with s.
func (s *Scene) Snapshot() (*Scene, error) {
	out := &Scene{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("scene: snapshot: %w", err)
	}
	return out, nil
}
