package physics

// Gravity is the downward acceleration numerator; a body accelerates by Gravity/mass.
const Gravity = 9.81

// Pair is an intersecting pair of body indices, I < J.
type Pair struct {
	I, J int
}

// System advances bodies by a fixed step: gravity, integration, then pairwise AABB detection.
// It keeps no per-body state, so the same input always produces the same output.
type System struct {
	Gravity  float32
	Resolver Resolver
}

// NewSystem returns a system with standard gravity and no collision response.
func NewSystem() *System {
	return &System{
		Gravity:  Gravity,
		Resolver: NopResolver{},
	}
}

// Advance moves every dynamic body forward by dt milliseconds and returns all intersecting pairs
// in (i, j) order. Pairs are passed to the Resolver before returning.
// Detection is O(n²); there is no broad phase.
func (s *System) Advance(bodies []*RigidBody, dt uint32) []Pair {
	step := float32(dt) / 1000
	for _, b := range bodies {
		if b.IsStatic() {
			continue
		}
		ay := s.Gravity / float32(b.Shape.Mass)
		b.Velocity.Y += ay * step
		b.Position.Y += b.Velocity.Y * step
	}

	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		ri := bounds(bodies[i])
		for j := i + 1; j < len(bodies); j++ {
			if ri.intersects(bounds(bodies[j])) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}

	if len(pairs) > 0 && s.Resolver != nil {
		s.Resolver.Resolve(bodies, pairs)
	}
	return pairs
}

// Intersects reports whether the boxes of a and b overlap.
func Intersects(a, b *RigidBody) bool {
	return bounds(a).intersects(bounds(b))
}

// rect is an integer AABB; positions are truncated toward zero.
type rect struct {
	x, y int32
	w, h int32
}

func bounds(b *RigidBody) rect {
	return rect{
		x: int32(b.Position.X),
		y: int32(b.Position.Y),
		w: int32(b.Shape.Width),
		h: int32(b.Shape.Height),
	}
}

// intersects is strict: shared edges do not count and empty boxes never intersect.
func (r rect) intersects(o rect) bool {
	if r.w <= 0 || r.h <= 0 || o.w <= 0 || o.h <= 0 {
		return false
	}
	return r.x < o.x+o.w && o.x < r.x+r.w &&
		r.y < o.y+o.h && o.y < r.y+r.h
}
