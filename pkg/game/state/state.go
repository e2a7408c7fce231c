// Package state holds a generated level after the generation pipeline hands it over.
package state

import (
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/spawns"
)

// Level is a finished level. Tiles are fixed once generation completes; only
// the reveal state changes afterwards.
type Level struct {
	Seed         int64
	Architecture string
	Rooms        []world.Rect

	// FortressPlaced is true if the fortress prefab was stamped in
	FortressPlaced bool
	Fortress       world.Rect

	m      *world.Map
	spawns *spawns.Registry
}

// NewLevel takes ownership of a generated map and its spawn registry
func NewLevel(m *world.Map, reg *spawns.Registry) *Level {
	return &Level{m: m, spawns: reg}
}

// Map returns the level map. Callers must treat tiles as read-only.
func (l *Level) Map() *world.Map {
	return l.m
}

// Registry returns the spawn registry backing the level
func (l *Level) Registry() *spawns.Registry {
	return l.spawns
}

// PlayerStart returns where the player enters the level
func (l *Level) PlayerStart() world.Point {
	p, _ := l.spawns.PlayerStart()
	return p
}

// AmuletStart returns where the amulet lies
func (l *Level) AmuletStart() world.Point {
	p, _ := l.spawns.Amulet()
	return p
}

// MonsterSpawns returns a copy of the monster spawn points
func (l *Level) MonsterSpawns() []world.Point {
	return l.spawns.Monsters()
}

// IsMonsterSpawn returns true if a monster starts at p
func (l *Level) IsMonsterSpawn(p world.Point) bool {
	return l.spawns.Contains(p)
}

// RevealAround marks the tiles visible from p within the default sight
// radius as revealed
func (l *Level) RevealAround(p world.Point) {
	world.RevealFOVDefault(l.m, p)
}

// RevealedCount returns how many tiles have been seen
func (l *Level) RevealedCount() int {
	n := 0
	for idx := 0; idx < l.m.Len(); idx++ {
		if l.m.IsRevealed(idx) {
			n++
		}
	}
	return n
}
