package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Rect is an axis-aligned rectangle. X1/Y1 are inclusive, X2/Y2 exclusive.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// RectWithSize creates a rect with its top-left corner at (x, y)
func RectWithSize(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Width returns the number of columns covered by the rect
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the number of rows covered by the rect
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// TopLeft returns the anchor corner of the rect
func (r Rect) TopLeft() Point {
	return Point{X: r.X1, Y: r.Y1}
}

// Center returns the middle point of the rect
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects returns true if the two rects overlap or touch
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains returns true if p lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// ForEach calls fn for every point in the rect, row by row
func (r Rect) ForEach(fn func(p Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Points returns every point in the rect in row-major order
func (r Rect) Points() []Point {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil
	}
	points := make([]Point, 0, r.Width()*r.Height())
	r.ForEach(func(p Point) {
		points = append(points, p)
	})
	return points
}

// PointSet returns the points of the rect as a set
func (r Rect) PointSet() mapset.Set[Point] {
	set := mapset.New[Point]()
	r.ForEach(func(p Point) {
		set.Put(p)
	})
	return set
}

// OnBorder returns true if p lies on the closed outline (X1..X2, Y1..Y2 inclusive).
// Used to draw placement candidates in map dumps.
func (r Rect) OnBorder(p Point) bool {
	betweenX := p.X >= r.X1 && p.X <= r.X2
	betweenY := p.Y >= r.Y1 && p.Y <= r.Y2

	return (p.X == r.X1 && betweenY) ||
		(p.X == r.X2 && betweenY) ||
		(p.Y == r.Y1 && betweenX) ||
		(p.Y == r.Y2 && betweenX)
}
