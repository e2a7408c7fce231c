// Package pathfind provides graph search over tile maps: multi-source flow
// fields (Dijkstra maps) and A* paths.
package pathfind

// Exit is a weighted edge from one node to a neighbouring node
type Exit struct {
	Index  int
	Weight float32
}

// BaseMap is the capability a map exposes to searches: weighted neighbours
// and a distance heuristic between two nodes.
type BaseMap interface {
	AvailableExits(idx int) []Exit
	PathingDistance(a, b int) float32
}
