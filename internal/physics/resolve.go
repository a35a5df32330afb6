package physics

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Resolver applies a collision response to the pairs found by System.Advance.
type Resolver interface {
	Resolve(bodies []*RigidBody, pairs []Pair)
}

// NopResolver leaves intersecting bodies where they are. It is the default:
// intersections are detected and reported but never corrected.
type NopResolver struct{}

func (NopResolver) Resolve([]*RigidBody, []Pair) {}

// PushApart separates each pair along the axis of minimum penetration and zeroes the
// velocity on that axis. Static bodies never move; two dynamic bodies split the
// correction by mass.
type PushApart struct{}

func (PushApart) Resolve(bodies []*RigidBody, pairs []Pair) {
	for _, p := range pairs {
		bi, bj := bodies[p.I], bodies[p.J]
		if bi.IsStatic() && bj.IsStatic() {
			continue
		}
		depth, axis := penetration(bi, bj)
		if axis < 0 {
			continue
		}
		// Sign pushes j away from i along the axis.
		sign := float32(1)
		if centre(bj, axis) < centre(bi, axis) {
			sign = -1
		}
		var moveI, moveJ float32
		switch {
		case bi.IsStatic():
			moveJ = depth
		case bj.IsStatic():
			moveI = -depth
		default:
			mi, mj := float32(bi.Shape.Mass), float32(bj.Shape.Mass)
			total := mi + mj
			moveI = -depth * (mj / total)
			moveJ = depth * (mi / total)
		}
		moveI *= sign
		moveJ *= sign
		if axis == 0 {
			bi.Position.X += moveI
			bj.Position.X += moveJ
		} else {
			bi.Position.Y += moveI
			bj.Position.Y += moveJ
		}
		for _, b := range [2]*RigidBody{bi, bj} {
			if b.IsStatic() {
				continue
			}
			if axis == 0 {
				b.Velocity.X = 0
			} else {
				b.Velocity.Y = 0
			}
		}
	}
}

// penetration returns the overlap depth and axis (0=X, 1=Y) of minimum penetration,
// or (0, -1) when the float boxes do not overlap.
func penetration(a, b *RigidBody) (depth float32, axis int) {
	ax0, ay0 := a.Position.X, a.Position.Y
	ax1, ay1 := ax0+float32(a.Shape.Width), ay0+float32(a.Shape.Height)
	bx0, by0 := b.Position.X, b.Position.Y
	bx1, by1 := bx0+float32(b.Shape.Width), by0+float32(b.Shape.Height)

	overlapX := math32.Min(ax1, bx1) - math32.Max(ax0, bx0)
	overlapY := math32.Min(ay1, by1) - math32.Max(ay0, by0)
	if overlapX <= 0 || overlapY <= 0 {
		return 0, -1
	}
	if overlapY <= overlapX {
		return overlapY, 1
	}
	return overlapX, 0
}

func centre(b *RigidBody, axis int) float32 {
	if axis == 0 {
		return b.Position.X + float32(b.Shape.Width)/2
	}
	return b.Position.Y + float32(b.Shape.Height)/2
}

// ResolverByName maps a configuration name to a resolver.
func ResolverByName(name string) (Resolver, error) {
	switch name {
	case "", "none":
		return NopResolver{}, nil
	case "push_apart":
		return PushApart{}, nil
	default:
		return nil, fmt.Errorf("physics: unknown resolver %q", name)
	}
}
