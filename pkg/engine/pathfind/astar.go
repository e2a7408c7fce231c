package pathfind

import (
	"github.com/zyedidia/generic/heap"
)

// Path is the result of an A* search
type Path struct {
	Steps   []int
	Cost    float32
	Success bool
}

type frontierNode struct {
	idx int
	f   float32
	g   float32
	seq int
}

// AStar finds the cheapest path from start to end. Neighbours are explored in
// the order the graph returns them; equal-priority nodes pop in insertion order.
func AStar(start, end int, graph BaseMap) Path {
	if start == end {
		return Path{Steps: []int{start}, Success: true}
	}

	open := heap.New(func(a, b frontierNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})

	seq := 0
	parents := make(map[int]int)
	best := map[int]float32{start: 0}
	closed := make(map[int]bool)

	open.Push(frontierNode{idx: start, f: graph.PathingDistance(start, end)})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if current.idx == end {
			return Path{Steps: rebuildPath(parents, start, end), Cost: current.g, Success: true}
		}
		if closed[current.idx] {
			continue
		}
		closed[current.idx] = true

		for _, exit := range graph.AvailableExits(current.idx) {
			if closed[exit.Index] {
				continue
			}
			g := current.g + exit.Weight
			if prev, seen := best[exit.Index]; seen && g >= prev {
				continue
			}
			best[exit.Index] = g
			parents[exit.Index] = current.idx
			seq++
			open.Push(frontierNode{
				idx: exit.Index,
				g:   g,
				f:   g + graph.PathingDistance(exit.Index, end),
				seq: seq,
			})
		}
	}

	return Path{}
}

func rebuildPath(parents map[int]int, start, end int) []int {
	steps := []int{end}
	for current := end; current != start; {
		current = parents[current]
		steps = append(steps, current)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
