package devtools

import (
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/spawns"
	"darkfortress/pkg/game/state"
)

// NewArena returns an open walled room of the given size with the player in
// the top left corner and the amulet in the bottom right. Handy for watching
// prefab placement without corridors in the way.
func NewArena(width, height int) *state.Level {
	m := world.NewMap(width, height)
	m.ForEachTile(func(idx int, p world.Point, _ world.TileType) {
		if p.X == 0 || p.Y == 0 || p.X == width-1 || p.Y == height-1 {
			m.SetTileAt(idx, world.Wall)
		}
	})

	reg := spawns.New()
	reg.SetPlayerStart(world.Pt(1, 1))
	reg.SetAmulet(world.Pt(width-2, height-2))

	level := state.NewLevel(m, reg)
	level.Architecture = "Arena"
	level.Rooms = []world.Rect{world.RectWithSize(1, 1, width-2, height-2)}
	return level
}
