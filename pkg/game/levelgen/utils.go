package levelgen

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"darkfortress/pkg/engine/world"
)

// ReachableFrom returns every floor tile reachable from start by cardinal
// steps. A start that is not floor reaches nothing.
func ReachableFrom(m *world.Map, start world.Point) mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	if !m.CanEnterTile(start) {
		return reachable
	}

	q := queue.New[world.Point]()
	q.Enqueue(start)
	reachable.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range world.AllDirections() {
			n := current.Add(dir.Delta())
			if m.CanEnterTile(n) && !reachable.Has(n) {
				reachable.Put(n)
				q.Enqueue(n)
			}
		}
	}

	return reachable
}

// FloorCount returns the number of floor tiles in m
func FloorCount(m *world.Map) int {
	n := 0
	m.ForEachTile(func(_ int, _ world.Point, t world.TileType) {
		if t == world.Floor {
			n++
		}
	})
	return n
}

// ManhattanDistance calculates the Manhattan distance between two points
func ManhattanDistance(a, b world.Point) int {
	d := a.Sub(b)
	if d.X < 0 {
		d.X = -d.X
	}
	if d.Y < 0 {
		d.Y = -d.Y
	}
	return d.X + d.Y
}
