package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Number is the set of scalar kinds a Vector may hold: integer grid
// coordinates or floating-point physical measures.
type Number interface {
	~int | ~float64
}

// Vector is a pair (X, Y) of integers or floats. GridParams.Size is a
// Vector[int]; cell measures, station-relative positions and every
// geometry-kernel coordinate are Vector[float64] (see Point).
type Vector[T Number] struct {
	X, Y T
}

// Add returns v+o component-wise.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	return Vector[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o component-wise.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return Vector[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dot returns the dot product of v and o.
func (v Vector[T]) Dot(o Vector[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Scale returns v scaled by f.
func (v Vector[T]) Scale(f T) Vector[T] {
	return Vector[T]{X: v.X * f, Y: v.Y * f}
}

// Length returns the Euclidean length of a floating-point Vector.
// Generic over any ~float64 so it specializes to Point without a second type.
func Length[T ~float64](v Vector[T]) float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Point is the floating-point Vector used throughout the geometry kernel:
// polygon vertices, station/storage positions, and shortest-path waypoints.
type Point = Vector[float64]

// Pt is a small constructor for Point literals, mirroring the terseness of
// constructing a gonum r2.Vec.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// toR2 converts a Point to the gonum spatial representation used internally
// by the visibility graph and its shortest-path queries.
func toR2(p Point) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// fromR2 is the inverse of toR2.
func fromR2(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Dist returns the Euclidean distance between two points, computed via
// gonum.org/v1/gonum/spatial/r2.Norm.
func Dist(a, b Point) float64 {
	return r2.Norm(r2.Sub(toR2(a), toR2(b)))
}
