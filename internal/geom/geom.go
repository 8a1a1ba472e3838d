// Package geom provides the geometric value types shared by the layout and
// caret packages: points, rectangles, and line fragments in
// device-independent pixel coordinates.
package geom

import "fmt"

// Point is a position in device-independent pixels.
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Offset returns a point shifted by dx, dy.
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner;
// W and H are non-negative.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.W, r.H)
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// MidY returns the vertical center of the rectangle.
func (r Rect) MidY() float64 {
	return r.Y + r.H/2
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point lies inside the rectangle.
// The top and left edges are inclusive, the bottom and right exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsY returns true if the vertical coordinate falls inside the
// rectangle's vertical extent.
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Y && y < r.MaxY()
}

// Offset returns a rectangle shifted by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
