package levelgen

import (
	"errors"
	"fmt"

	"darkfortress/pkg/engine/pathfind"
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/state"
)

// AmuletFlowDepth caps the distance search used to place the amulet
const AmuletFlowDepth = 1024.0

var (
	// ErrStartBlocked is returned when the player would start inside a wall
	ErrStartBlocked = errors.New("player start is not floor")

	// ErrAmuletUnreachable is returned when no path leads from the player start to the amulet
	ErrAmuletUnreachable = errors.New("amulet is not reachable from the player start")
)

// FarthestFrom returns the reachable tile with the longest walk from start
func FarthestFrom(m *world.Map, start world.Point) (world.Point, error) {
	idx, ok := m.TryIndex(start)
	if !ok || !m.CanEnterTile(start) {
		return world.Point{}, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	field := pathfind.NewFlowField(m.Width(), m.Height(), []int{idx}, m, AmuletFlowDepth)
	far, ok := field.MostDistant()
	if !ok {
		return start, nil
	}
	return m.PointOf(far), nil
}

// Validate checks the level is playable: the player starts on floor and can
// walk to the amulet
func Validate(level *state.Level) error {
	m := level.Map()
	start := level.PlayerStart()
	if !m.CanEnterTile(start) {
		return fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	amulet := level.AmuletStart()
	if !ReachableFrom(m, start).Has(amulet) {
		return fmt.Errorf("%w: start %v, amulet %v", ErrAmuletUnreachable, start, amulet)
	}
	return nil
}
