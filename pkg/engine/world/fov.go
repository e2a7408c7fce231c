package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FOVRadius is the default field of view radius (Chebyshev distance).
const FOVRadius = 8

// CalculateFOV calculates which tiles are visible from center within radius.
// Uses a Chebyshev square with Bresenham line-of-sight; opaque tiles block
// vision but are themselves visible.
func CalculateFOV(m *Map, center Point, radius int) []Point {
	if m == nil || !m.InBounds(center) {
		return nil
	}

	visible := mapset.New[Point]()
	visible.Put(center)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			target := Point{X: center.X + dx, Y: center.Y + dy}
			if !m.InBounds(target) {
				continue
			}
			if hasLineOfSight(m, center, target) {
				visible.Put(target)
			}
		}
	}

	// Row-major order keeps callers deterministic
	result := make([]Point, 0, visible.Size())
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := Point{X: x, Y: y}
			if visible.Has(p) {
				result = append(result, p)
			}
		}
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// hasLineOfSight returns true if nothing opaque lies strictly between from and to.
func hasLineOfSight(m *Map, from, to Point) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)
	x, y := from.X, from.Y

	if absDx >= absDy {
		err := 2*absDy - absDx
		for x != to.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if x == to.X && y == to.Y {
				return true
			}
			idx, ok := m.TryIndex(Point{X: x, Y: y})
			if !ok || m.IsOpaque(idx) {
				return false
			}
		}
	} else {
		err := 2*absDx - absDy
		for y != to.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx

			if x == to.X && y == to.Y {
				return true
			}
			idx, ok := m.TryIndex(Point{X: x, Y: y})
			if !ok || m.IsOpaque(idx) {
				return false
			}
		}
	}

	return true
}

// RevealFOV marks every tile visible from center as revealed
func RevealFOV(m *Map, center Point, radius int) {
	for _, p := range CalculateFOV(m, center, radius) {
		m.Reveal(m.IndexOf(p.X, p.Y))
	}
}

// RevealFOVDefault reveals tiles using the default FOV radius
func RevealFOVDefault(m *Map, center Point) {
	RevealFOV(m, center, FOVRadius)
}
