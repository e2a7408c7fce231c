// Package generator carves room-and-corridor layouts into tile maps.
package generator

import (
	"darkfortress/pkg/engine/rng"
	"darkfortress/pkg/engine/world"
)

// Layout is what an architecture reports about the map it carved
type Layout struct {
	Rooms       []world.Rect
	PlayerStart world.Point
}

// Architecture is an interface for map generation algorithms
type Architecture interface {
	Build(m *world.Map, r *rng.RNG) Layout
	Name() string
}

// Available architectures
var (
	Rooms = &RoomsArchitecture{NumRooms: DefaultNumRooms}
	BSP   = &BSPArchitecture{}
)

// DefaultArchitecture is the default map architecture
var DefaultArchitecture Architecture = Rooms

// ByName returns the architecture with the given short name ("rooms" or "bsp")
func ByName(name string) (Architecture, bool) {
	switch name {
	case "", "rooms":
		return Rooms, true
	case "bsp":
		return BSP, true
	default:
		return nil, false
	}
}

// carveRect marks every point of r as floor, skipping the outer map edge
func carveRect(m *world.Map, r world.Rect) {
	r.ForEach(func(p world.Point) {
		if p.X > 0 && p.X < m.Width()-1 && p.Y > 0 && p.Y < m.Height()-1 {
			m.SetTile(p, world.Floor)
		}
	})
}

// carveHorizontal carves a one-tile corridor along row y
func carveHorizontal(m *world.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.SetTile(world.Pt(x, y), world.Floor)
	}
}

// carveVertical carves a one-tile corridor along column x
func carveVertical(m *world.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.SetTile(world.Pt(x, y), world.Floor)
	}
}

// connect joins two points with an L-shaped corridor, picking the bend at random
func connect(m *world.Map, r *rng.RNG, from, to world.Point) {
	if r.CoinFlip() {
		carveHorizontal(m, from.X, to.X, from.Y)
		carveVertical(m, from.Y, to.Y, to.X)
	} else {
		carveVertical(m, from.Y, to.Y, from.X)
		carveHorizontal(m, from.X, to.X, to.Y)
	}
}
