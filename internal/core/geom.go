// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or extent in world units. World space is y-up.
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

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned rectangle anchored at its center.
type Box struct {
	Pos  Vec2 // Center
	Size Vec2
}

// BoxAt creates a box centered at pos.
func BoxAt(pos, size Vec2) Box {
	return Box{Pos: pos, Size: size}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Pos.X - b.Size.X/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Pos.X + b.Size.X/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Pos.Y + b.Size.Y/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Pos.Y - b.Size.Y/2 }

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Left() >= o.Right() || o.Left() >= b.Right() {
		return false
	}
	if b.Bottom() >= o.Top() || o.Bottom() >= b.Top() {
		return false
	}
	return true
}

// Rect represents an integer axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
