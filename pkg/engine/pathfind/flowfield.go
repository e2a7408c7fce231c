package pathfind

import (
	"math"

	"github.com/zyedidia/generic/queue"
)

// Unreachable is the distance stored for tiles the search never reached
const Unreachable float32 = math.MaxFloat32

// FlowField holds, for every node, the distance to the nearest source node.
// It is built once and read-only afterwards.
type FlowField struct {
	width    int
	height   int
	maxDepth float32
	dist     []float32
}

type openNode struct {
	idx   int
	depth float32
}

// NewFlowField runs a multi-source search from starts over graph. Nodes whose
// distance would reach maxDepth are left at Unreachable. Start indices outside
// the grid are ignored.
func NewFlowField(width, height int, starts []int, graph BaseMap, maxDepth float32) *FlowField {
	f := &FlowField{
		width:    width,
		height:   height,
		maxDepth: maxDepth,
		dist:     make([]float32, width*height),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}

	open := queue.New[openNode]()
	for _, start := range starts {
		if start < 0 || start >= len(f.dist) {
			continue
		}
		f.dist[start] = 0
		open.Enqueue(openNode{idx: start})
	}

	for !open.Empty() {
		current := open.Dequeue()
		// A shorter route to this node was found after it was queued
		if current.depth > f.dist[current.idx] {
			continue
		}
		for _, exit := range graph.AvailableExits(current.idx) {
			if exit.Index < 0 || exit.Index >= len(f.dist) {
				continue
			}
			newDepth := current.depth + exit.Weight
			if newDepth >= f.dist[exit.Index] || newDepth >= maxDepth {
				continue
			}
			f.dist[exit.Index] = newDepth
			open.Enqueue(openNode{idx: exit.Index, depth: newDepth})
		}
	}

	return f
}

// Distance returns the distance of idx from the nearest source
func (f *FlowField) Distance(idx int) float32 {
	if idx < 0 || idx >= len(f.dist) {
		return Unreachable
	}
	return f.dist[idx]
}

// Reachable returns true if idx was reached within the depth bound
func (f *FlowField) Reachable(idx int) bool {
	return f.Distance(idx) < f.maxDepth
}

// Len returns the number of nodes covered by the field
func (f *FlowField) Len() int {
	return len(f.dist)
}

// MaxDepth returns the depth bound the field was built with
func (f *FlowField) MaxDepth() float32 {
	return f.maxDepth
}

// MostDistant returns the reachable node furthest from every source.
// Ties resolve to the lowest index.
func (f *FlowField) MostDistant() (int, bool) {
	best, bestDist := -1, float32(-1)
	for idx, d := range f.dist {
		if d < f.maxDepth && d > bestDist {
			best, bestDist = idx, d
		}
	}
	return best, best >= 0
}

// LowestExit returns the neighbour of idx that is closest to a source.
// Useful for moving towards the sources.
func (f *FlowField) LowestExit(idx int, graph BaseMap) (int, bool) {
	best, bestDist := -1, Unreachable
	for _, exit := range graph.AvailableExits(idx) {
		if d := f.Distance(exit.Index); d < bestDist {
			best, bestDist = exit.Index, d
		}
	}
	return best, best >= 0
}

// HighestExit returns the reachable neighbour of idx that is furthest from
// every source. Useful for fleeing.
func (f *FlowField) HighestExit(idx int, graph BaseMap) (int, bool) {
	best, bestDist := -1, float32(-1)
	for _, exit := range graph.AvailableExits(idx) {
		if d := f.Distance(exit.Index); d < f.maxDepth && d > bestDist {
			best, bestDist = exit.Index, d
		}
	}
	return best, best >= 0
}
