// Package core provides fundamental types and utilities for the pong platform.
// It contains no external UI dependencies (especially no Bubble Tea or Ebiten)
// to keep simulation logic pure and testable.
package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerateVector is returned when a zero-length vector would have to be
// rescaled. A zero vector has no direction to preserve.
var ErrDegenerateVector = errors.New("core: cannot rescale a zero-length vector")

// Vec2 is a 2D point or velocity in arena units.
// It shares its layout with gonum's r2.Vec so the r2 helpers apply directly.
type Vec2 r2.Vec

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Magnitude returns the Euclidean length sqrt(x²+y²).
func (v Vec2) Magnitude() float64 {
	return r2.Norm(r2.Vec(v))
}

// WithMagnitude returns v rescaled to the target length with its direction
// unchanged. For a zero vector it returns v as is together with
// ErrDegenerateVector.
func (v Vec2) WithMagnitude(target float64) (Vec2, error) {
	m := v.Magnitude()
	if m == 0 {
		return v, ErrDegenerateVector
	}
	return v.Scale(target / m), nil
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2(r2.Add(r2.Vec(v), r2.Vec(other)))
}

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2(r2.Scale(f, r2.Vec(v)))
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned box anchored at its center.
// Size holds the full extents; both components are kept non-negative.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box of the given extents centered at the origin.
// Negative extents are clamped to zero.
func NewBox(w, h float64) Box {
	return Box{Size: V(max(w, 0), max(h, 0))}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.Size.X/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.Size.X/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y - b.Size.Y/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y + b.Size.Y/2
}

// Overlaps returns true if this box overlaps with another.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Left() < other.Right() && b.Right() > other.Left() &&
		b.Top() < other.Bottom() && b.Bottom() > other.Top()
}

// Rect is an integer cell rectangle used by the terminal screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
