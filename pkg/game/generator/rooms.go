package generator

import (
	"sort"

	"darkfortress/pkg/engine/rng"
	"darkfortress/pkg/engine/world"
)

// DefaultNumRooms is the number of rooms the rooms architecture aims for
const DefaultNumRooms = 20

// Room size and placement limits
const (
	maxRoomSize       = 10
	minRoomSize       = 2
	maxPlacementTries = 1000
)

// RoomsArchitecture scatters non-overlapping rectangular rooms and joins them
// in order of their centre column.
type RoomsArchitecture struct {
	NumRooms int
}

// Name returns the name of this architecture
func (a *RoomsArchitecture) Name() string {
	return "Rooms"
}

// Build fills the map with walls, then carves rooms and corridors
func (a *RoomsArchitecture) Build(m *world.Map, r *rng.RNG) Layout {
	m.Fill(world.Wall)

	numRooms := a.NumRooms
	if numRooms <= 0 {
		numRooms = DefaultNumRooms
	}

	rooms := a.buildRandomRooms(m, r, numRooms)
	buildCorridors(m, r, rooms)

	layout := Layout{Rooms: rooms}
	if len(rooms) > 0 {
		layout.PlayerStart = rooms[0].Center()
	} else {
		// Map too small for any room
		center := world.Pt(m.Width()/2, m.Height()/2)
		m.SetTile(center, world.Floor)
		layout.PlayerStart = center
	}
	return layout
}

func (a *RoomsArchitecture) buildRandomRooms(m *world.Map, r *rng.RNG, numRooms int) []world.Rect {
	var rooms []world.Rect
	if m.Width() <= maxRoomSize+1 || m.Height() <= maxRoomSize+1 {
		return rooms
	}

	for tries := 0; len(rooms) < numRooms && tries < maxPlacementTries; tries++ {
		room := world.RectWithSize(
			r.Range(1, m.Width()-maxRoomSize),
			r.Range(1, m.Height()-maxRoomSize),
			r.Range(minRoomSize, maxRoomSize),
			r.Range(minRoomSize, maxRoomSize),
		)

		overlap := false
		for _, existing := range rooms {
			if existing.Intersects(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		carveRect(m, room)
		rooms = append(rooms, room)
	}
	return rooms
}

// buildCorridors connects each room to the previous one, left to right
func buildCorridors(m *world.Map, r *rng.RNG, rooms []world.Rect) {
	sorted := make([]world.Rect, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Center().X < sorted[j].Center().X
	})

	for i := 1; i < len(sorted); i++ {
		connect(m, r, sorted[i-1].Center(), sorted[i].Center())
	}
}
