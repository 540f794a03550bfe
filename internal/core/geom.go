// Package core provides fundamental types and utilities shared by the simulation and
// its frontends. It contains no external dependencies (especially no Bubble Tea or
// Ebitengine) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in canvas or cell coordinates.
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

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Span is a one-dimensional half-open interval [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// NewSpan creates a span starting at lo with the given length.
func NewSpan(lo, length int) Span {
	return Span{Lo: lo, Hi: lo + length}
}

// Contains reports whether v lies in [Lo, Hi).
func (s Span) Contains(v int) bool {
	return v >= s.Lo && v < s.Hi
}

// ContainsClosed reports whether v lies in [Lo, Hi].
func (s Span) ContainsClosed(v int) bool {
	return v >= s.Lo && v <= s.Hi
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

// Scale maps v from a [0, from) range onto [0, to), rounding down.
// Used to project canvas pixels onto terminal cells.
func Scale(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	n := v * to
	// Floor division for negative coordinates (obstacles leaving the left edge)
	if n < 0 && n%from != 0 {
		return n/from - 1
	}
	return n / from
}
