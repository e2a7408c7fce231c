package levelgen

import (
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/prefab"
)

// Monster spawn defaults
const (
	DefaultMonsterCount       = 50
	DefaultMonsterMinDistance = 10.0
)

// MonsterSpawner picks ambient monster spawns on floor tiles away from the
// player start. It reads the map at call time, so spawns requested after the
// fortress is carved see the fortress tiles.
type MonsterSpawner struct {
	Map         *world.Map
	Count       int
	MinDistance float32
}

// SpawnMonsters picks up to Count distinct floor tiles further than
// MinDistance (straight line) from start
func (s MonsterSpawner) SpawnMonsters(start world.Point, r prefab.Rand) []world.Point {
	var candidates []world.Point
	s.Map.ForEachTile(func(_ int, p world.Point, t world.TileType) {
		if t == world.Floor && world.Distance(start, p) > s.MinDistance {
			candidates = append(candidates, p)
		}
	})

	spawns := make([]world.Point, 0, s.Count)
	for i := 0; i < s.Count && len(candidates) > 0; i++ {
		idx := r.Range(0, len(candidates))
		spawns = append(spawns, candidates[idx])
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}
	return spawns
}
