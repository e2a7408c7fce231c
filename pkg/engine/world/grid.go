package world

import (
	"math"

	"darkfortress/pkg/engine/pathfind"
)

// Map is a fixed-size dense tile grid with per-tile reveal state.
// Tiles are stored row-major: index = y*width + x.
type Map struct {
	width  int
	height int

	tiles    []TileType
	revealed []bool
}

// NewMap creates a map of the given size with every tile set to Floor
func NewMap(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic("Map dimensions must be positive")
	}

	m := &Map{
		width:    width,
		height:   height,
		tiles:    make([]TileType, width*height),
		revealed: make([]bool, width*height),
	}
	m.Fill(Floor)
	return m
}

// Width returns the number of columns in the map
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows in the map
func (m *Map) Height() int {
	return m.height
}

// Len returns the number of tiles in the map
func (m *Map) Len() int {
	return len(m.tiles)
}

// Bounds returns a rect covering the whole map
func (m *Map) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: m.width, Y2: m.height}
}

// IndexOf maps a coordinate to its storage index. The caller must ensure the
// coordinate is in bounds; use TryIndex otherwise.
func (m *Map) IndexOf(x, y int) int {
	return y*m.width + x
}

// PointOf is the inverse of IndexOf
func (m *Map) PointOf(idx int) Point {
	return Point{X: idx % m.width, Y: idx / m.width}
}

// InBounds checks if a point is within map bounds
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// TryIndex returns the storage index for p, or false if p is out of bounds
func (m *Map) TryIndex(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.IndexOf(p.X, p.Y), true
}

// Fill sets every tile to t
func (m *Map) Fill(t TileType) {
	for i := range m.tiles {
		m.tiles[i] = t
	}
}

// Tile returns the tile at p. Out of bounds points read as Wall.
func (m *Map) Tile(p Point) TileType {
	idx, ok := m.TryIndex(p)
	if !ok {
		return Wall
	}
	return m.tiles[idx]
}

// SetTile sets the tile at p. Returns false if out of bounds.
func (m *Map) SetTile(p Point, t TileType) bool {
	idx, ok := m.TryIndex(p)
	if !ok {
		return false
	}
	m.tiles[idx] = t
	return true
}

// TileAt returns the tile stored at idx
func (m *Map) TileAt(idx int) TileType {
	return m.tiles[idx]
}

// SetTileAt sets the tile stored at idx
func (m *Map) SetTileAt(idx int, t TileType) {
	m.tiles[idx] = t
}

// CanEnterTile returns true if p is in bounds and walkable
func (m *Map) CanEnterTile(p Point) bool {
	idx, ok := m.TryIndex(p)
	return ok && m.tiles[idx].IsWalkable()
}

// IsOpaque returns true if the tile at idx blocks sight
func (m *Map) IsOpaque(idx int) bool {
	return !m.tiles[idx].IsWalkable()
}

// Reveal marks the tile at idx as seen
func (m *Map) Reveal(idx int) {
	m.revealed[idx] = true
}

// IsRevealed returns true if the tile at idx has ever been seen
func (m *Map) IsRevealed(idx int) bool {
	return m.revealed[idx]
}

// ForEachTile iterates over all tiles in row-major order
func (m *Map) ForEachTile(fn func(idx int, p Point, t TileType)) {
	for idx, t := range m.tiles {
		fn(idx, m.PointOf(idx), t)
	}
}

// Clone returns a deep copy of the map
func (m *Map) Clone() *Map {
	c := &Map{
		width:    m.width,
		height:   m.height,
		tiles:    make([]TileType, len(m.tiles)),
		revealed: make([]bool, len(m.revealed)),
	}
	copy(c.tiles, m.tiles)
	copy(c.revealed, m.revealed)
	return c
}

// Equal reports whether both maps have the same size, tiles and reveal state
func (m *Map) Equal(other *Map) bool {
	if other == nil || m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != other.tiles[i] || m.revealed[i] != other.revealed[i] {
			return false
		}
	}
	return true
}

func (m *Map) validExit(loc Point, dir Direction) (int, bool) {
	dest := loc.Add(dir.Delta())
	if !m.CanEnterTile(dest) {
		return 0, false
	}
	return m.IndexOf(dest.X, dest.Y), true
}

// AvailableExits returns the walkable cardinal neighbours of idx, each with
// weight 1. Exits are listed west, east, north, south.
func (m *Map) AvailableExits(idx int) []pathfind.Exit {
	exits := make([]pathfind.Exit, 0, 4)
	location := m.PointOf(idx)
	for _, dir := range AllDirections() {
		if dest, ok := m.validExit(location, dir); ok {
			exits = append(exits, pathfind.Exit{Index: dest, Weight: 1.0})
		}
	}
	return exits
}

// PathingDistance returns the Euclidean distance between two tiles
func (m *Map) PathingDistance(a, b int) float32 {
	return Distance(m.PointOf(a), m.PointOf(b))
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Point) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}
