// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileType is the terrain kind stored in each map tile.
type TileType int

// Tile types
const (
	Wall TileType = iota
	Floor
)

// String returns the name of the tile type
func (t TileType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	default:
		return "Unknown"
	}
}

// Glyph returns the single-character representation used by map dumps
func (t TileType) Glyph() rune {
	switch t {
	case Floor:
		return '.'
	default:
		return '#'
	}
}

// IsWalkable returns true if actors can enter a tile of this type
func (t TileType) IsWalkable() bool {
	return t == Floor
}
