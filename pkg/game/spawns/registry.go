// Package spawns holds the monster spawn points, player start and amulet
// location decided during level generation.
package spawns

import (
	"darkfortress/pkg/engine/world"
)

// Registry is the authoritative list of monster start positions plus the
// player start and the amulet (goal) location for a level.
type Registry struct {
	monsters []world.Point

	playerStart    world.Point
	hasPlayerStart bool

	amulet    world.Point
	hasAmulet bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Monsters returns a copy of the monster spawn points in order
func (r *Registry) Monsters() []world.Point {
	out := make([]world.Point, len(r.monsters))
	copy(out, r.monsters)
	return out
}

// Len returns the number of monster spawn points
func (r *Registry) Len() int {
	return len(r.monsters)
}

// Add appends a monster spawn point
func (r *Registry) Add(p world.Point) {
	r.monsters = append(r.monsters, p)
}

// Contains returns true if p is a monster spawn point
func (r *Registry) Contains(p world.Point) bool {
	for _, m := range r.monsters {
		if m == p {
			return true
		}
	}
	return false
}

// Clear removes every monster spawn point
func (r *Registry) Clear() {
	r.monsters = r.monsters[:0]
}

// Set replaces the monster spawn points
func (r *Registry) Set(points []world.Point) {
	r.monsters = append(r.monsters[:0:0], points...)
}

// Merge appends points that are not already registered, keeping order
func (r *Registry) Merge(points []world.Point) {
	for _, p := range points {
		if !r.Contains(p) {
			r.monsters = append(r.monsters, p)
		}
	}
}

// RemoveWithin drops every monster spawn point inside rect and returns how
// many were removed
func (r *Registry) RemoveWithin(rect world.Rect) int {
	inside := rect.PointSet()
	kept := r.monsters[:0]
	for _, p := range r.monsters {
		if !inside.Has(p) {
			kept = append(kept, p)
		}
	}
	removed := len(r.monsters) - len(kept)
	r.monsters = kept
	return removed
}

// SetPlayerStart records where the player enters the level
func (r *Registry) SetPlayerStart(p world.Point) {
	r.playerStart = p
	r.hasPlayerStart = true
}

// PlayerStart returns the player start, or false if none was set
func (r *Registry) PlayerStart() (world.Point, bool) {
	return r.playerStart, r.hasPlayerStart
}

// SetAmulet records the amulet location
func (r *Registry) SetAmulet(p world.Point) {
	r.amulet = p
	r.hasAmulet = true
}

// Amulet returns the amulet location, or false if none was set
func (r *Registry) Amulet() (world.Point, bool) {
	return r.amulet, r.hasAmulet
}

// Clone returns an independent copy of the registry
func (r *Registry) Clone() *Registry {
	c := *r
	c.monsters = r.Monsters()
	return &c
}
