// Package geom provides the 2D vector and rectangle primitives used by the simulation.
package geom

import "math"

// ArrivalTolerance is the per-axis distance under which two points are treated as equal.
const ArrivalTolerance = 2.0

// Vec2 is a 2D point or vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean norm.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApproxEqual reports whether v and o differ by less than tol on each axis independently.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) < tol && math.Abs(v.Y-o.Y) < tol
}

// Near is ApproxEqual with ArrivalTolerance.
func (v Vec2) Near(o Vec2) bool {
	return v.ApproxEqual(o, ArrivalTolerance)
}

// Rect is an axis-aligned rectangle. W and H are never negative.
type Rect struct {
	X, Y, W, H float64
}

// R constructs a Rect, clamping negative extents to zero.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Contains reports whether (px, py) lies strictly inside r. Points on the edge are outside.
func (r Rect) Contains(px, py float64) bool {
	return px > r.X && px < r.X+r.W && py > r.Y && py < r.Y+r.H
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Overlaps reports whether r and o intersect. Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Offset returns r translated by p.
func (r Rect) Offset(p Vec2) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}
