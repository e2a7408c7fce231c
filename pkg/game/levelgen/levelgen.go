// Package levelgen runs the full level generation pipeline: architecture,
// amulet, monster spawns, the fortress prefab and a final playability check.
package levelgen

import (
	"errors"
	"fmt"
	"log/slog"

	"darkfortress/pkg/engine/logger"
	"darkfortress/pkg/engine/rng"
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/config"
	"darkfortress/pkg/game/generator"
	"darkfortress/pkg/game/prefab"
	"darkfortress/pkg/game/spawns"
	"darkfortress/pkg/game/state"
)

// Default map size
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// ErrUnknownArchitecture is returned for an architecture name nothing implements
var ErrUnknownArchitecture = errors.New("unknown map architecture")

// Builder produces one level per Build call
type Builder struct {
	Config *config.Config
	Arch   generator.Architecture
	RNG    *rng.RNG
	Log    *slog.Logger

	// OnCandidate, if set, sees every rect tried for the fortress along with
	// the map it would be carved into
	OnCandidate func(m *world.Map, r world.Rect)
}

// NewBuilder resolves the configured architecture and seeds the random source
func NewBuilder(cfg *config.Config) (*Builder, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	arch, ok := generator.ByName(cfg.Map.Architecture)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchitecture, cfg.Map.Architecture)
	}
	if _, isRooms := arch.(*generator.RoomsArchitecture); isRooms && cfg.Map.Rooms > 0 {
		arch = &generator.RoomsArchitecture{NumRooms: cfg.Map.Rooms}
	}

	return &Builder{
		Config: cfg,
		Arch:   arch,
		RNG:    rng.New(cfg.Seed),
		Log:    logger.Get(),
	}, nil
}

func (b *Builder) size() (int, int) {
	w, h := b.Config.Map.Width, b.Config.Map.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (b *Builder) spawner(m *world.Map) MonsterSpawner {
	return MonsterSpawner{
		Map:         m,
		Count:       b.Config.Monsters.Count,
		MinDistance: b.Config.Monsters.MinDistance,
	}
}

// Build generates a level. A fortress that cannot be placed, or whose walls
// would trap the player, is skipped and the level is kept without it.
func (b *Builder) Build() (*state.Level, error) {
	if b.Log == nil {
		b.Log = logger.Get()
	}
	if b.RNG == nil {
		b.RNG = rng.New(b.Config.Seed)
	}
	arch := b.Arch
	if arch == nil {
		arch = generator.DefaultArchitecture
	}

	w, h := b.size()
	m := world.NewMap(w, h)
	layout := arch.Build(m, b.RNG)

	reg := spawns.New()
	reg.SetPlayerStart(layout.PlayerStart)

	amulet, err := FarthestFrom(m, layout.PlayerStart)
	if err != nil {
		return nil, fmt.Errorf("placing amulet: %w", err)
	}
	reg.SetAmulet(amulet)

	b.Log.Debug("level layout built",
		"architecture", arch.Name(),
		"seed", b.RNG.Seed(),
		"rooms", len(layout.Rooms),
		"start", layout.PlayerStart.String(),
		"amulet", amulet.String())

	level := state.NewLevel(m, reg)
	level.Seed = b.RNG.Seed()
	level.Architecture = arch.Name()
	level.Rooms = layout.Rooms

	return b.Populate(level)
}

// Populate adds ambient monsters and the fortress to a level whose tiles,
// player start and amulet are already decided, then validates it
func (b *Builder) Populate(level *state.Level) (*state.Level, error) {
	if b.Log == nil {
		b.Log = logger.Get()
	}
	if b.RNG == nil {
		b.RNG = rng.New(b.Config.Seed)
	}

	spawner := b.spawner(level.Map())
	level.Registry().Set(spawner.SpawnMonsters(level.PlayerStart(), b.RNG))

	if b.Config.Fortress.Enabled {
		level = b.applyFortress(level, spawner)
	}

	if err := Validate(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (b *Builder) applyFortress(level *state.Level, spawner MonsterSpawner) *state.Level {
	m := level.Map()
	reg := level.Registry()
	mapBefore := m.Clone()
	regBefore := reg.Clone()

	var onCandidate func(world.Rect)
	if b.OnCandidate != nil {
		onCandidate = func(r world.Rect) { b.OnCandidate(m, r) }
	}

	placement, err := prefab.Apply(m, reg, prefab.Fortress, prefab.Options{
		Attempts:    b.Config.Fortress.Attempts,
		MinDistance: b.Config.Fortress.MinDistance,
		MaxDistance: b.Config.Fortress.MaxDistance,
		FlowDepth:   b.Config.Fortress.FlowDepth,
		Rand:        b.RNG,
		Policy:      spawner,
		Log:         b.Log,
		OnCandidate: onCandidate,
	})
	if err != nil {
		// Apply already logged the failure and left the level untouched
		return level
	}

	if err := Validate(level); err != nil {
		b.Log.Warn("fortress removed, it made the level unplayable",
			"x", placement.Rect.X1, "y", placement.Rect.Y1, "error", err)
		restored := state.NewLevel(mapBefore, regBefore)
		restored.Seed = level.Seed
		restored.Architecture = level.Architecture
		restored.Rooms = level.Rooms
		return restored
	}

	level.FortressPlaced = true
	level.Fortress = placement.Rect
	return level
}
