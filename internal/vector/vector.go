package vector

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type a Vec2 can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2-component value used for positions, velocities, forces and camera offsets.
type Vec2[T Number] struct {
	X T
	Y T
}

// New returns the vector (x, y).
func New[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}
