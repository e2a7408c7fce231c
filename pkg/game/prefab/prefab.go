package prefab

import (
	"errors"
	"fmt"
	"log/slog"

	"darkfortress/pkg/engine/logger"
	"darkfortress/pkg/engine/pathfind"
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/spawns"
)

// Placement defaults
const (
	DefaultAttempts    = 10
	DefaultMinDistance = 50.0
	DefaultMaxDistance = 2000.0
	DefaultFlowDepth   = 1024.0
)

var (
	// ErrNoPlacement is returned when no candidate rect passed the distance band
	ErrNoPlacement = errors.New("no valid placement found")
	// ErrInvalidTemplate is returned for templates that cannot be stamped
	ErrInvalidTemplate = errors.New("invalid prefab template")
	// ErrNoPlayerStart is returned when the registry has no player start to measure from
	ErrNoPlayerStart = errors.New("player start not set")
)

// Rand is the randomness the placer consumes: a uniform integer in [min, max)
type Rand interface {
	Range(min, max int) int
}

// DistanceField reports the distance of a tile index from the player start
type DistanceField interface {
	Distance(idx int) float32
}

// SpawnPolicy produces the ambient monster spawns for a level
type SpawnPolicy interface {
	SpawnMonsters(start world.Point, r Rand) []world.Point
}

// SpawnPolicyFunc adapts a function to SpawnPolicy
type SpawnPolicyFunc func(start world.Point, r Rand) []world.Point

// SpawnMonsters calls f
func (f SpawnPolicyFunc) SpawnMonsters(start world.Point, r Rand) []world.Point {
	return f(start, r)
}

// Options tunes placement. Zero values fall back to the defaults.
type Options struct {
	Attempts    int
	MinDistance float32
	MaxDistance float32
	FlowDepth   float32

	Rand   Rand
	Policy SpawnPolicy
	Log    *slog.Logger

	// OnCandidate, if set, is called with every rect considered
	OnCandidate func(r world.Rect)
}

func (o Options) withDefaults() Options {
	if o.Attempts <= 0 {
		o.Attempts = DefaultAttempts
	}
	if o.MinDistance == 0 && o.MaxDistance == 0 {
		o.MinDistance = DefaultMinDistance
		o.MaxDistance = DefaultMaxDistance
	}
	if o.FlowDepth <= 0 {
		o.FlowDepth = DefaultFlowDepth
	}
	if o.Log == nil {
		o.Log = logger.Get()
	}
	return o
}

// Placement describes where a template was stamped
type Placement struct {
	Rect     world.Rect
	Attempts int
}

// Anchor returns the top-left corner of the placement
func (p Placement) Anchor() world.Point {
	return p.Rect.TopLeft()
}

// inBand accepts distances strictly between min and max
func inBand(d, min, max float32) bool {
	return d > min && d < max
}

// FindPlacement picks random rects of the template's size until one contains
// at least one tile whose distance lies inside the band. It does not modify
// the map.
func FindPlacement(m *world.Map, field DistanceField, tmpl Template, opts Options) (Placement, error) {
	opts = opts.withDefaults()
	if opts.Rand == nil {
		return Placement{}, errors.New("prefab placement needs a random source")
	}
	bounds := m.Bounds()
	if tmpl.Width > bounds.Width() || tmpl.Height > bounds.Height() {
		return Placement{}, fmt.Errorf("%w: %q (%dx%d) does not fit a %dx%d map",
			ErrInvalidTemplate, tmpl.Name, tmpl.Width, tmpl.Height, m.Width(), m.Height())
	}

	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		rect := world.RectWithSize(
			opts.Rand.Range(0, m.Width()-tmpl.Width),
			opts.Rand.Range(0, m.Height()-tmpl.Height),
			tmpl.Width,
			tmpl.Height,
		)
		if opts.OnCandidate != nil {
			opts.OnCandidate(rect)
		}

		for _, p := range rect.Points() {
			d := field.Distance(m.IndexOf(p.X, p.Y))
			if inBand(d, opts.MinDistance, opts.MaxDistance) {
				return Placement{Rect: rect, Attempts: attempt}, nil
			}
		}
		opts.Log.Debug("prefab candidate rejected", "prefab", tmpl.Name, "attempt", attempt, "x", rect.X1, "y", rect.Y1)
	}

	return Placement{}, fmt.Errorf("%w for %q after %d attempts", ErrNoPlacement, tmpl.Name, opts.Attempts)
}

// Carve writes the template into m with its top-left corner at anchor. The
// registry's monster spawns are cleared and replaced with the template's
// marked positions; an 'A' moves the amulet.
func Carve(m *world.Map, reg *spawns.Registry, tmpl Template, anchor world.Point, log *slog.Logger) {
	if log == nil {
		log = logger.Get()
	}
	cells := tmpl.Cells()
	reg.Clear()

	i := 0
	for y := anchor.Y; y < anchor.Y+tmpl.Height; y++ {
		for x := anchor.X; x < anchor.X+tmpl.Width; x++ {
			p := world.Pt(x, y)
			c := cells[i]
			i++

			switch c {
			case CharMonster:
				m.SetTile(p, world.Floor)
				reg.Add(p)
			case CharAmulet:
				m.SetTile(p, world.Floor)
				reg.SetAmulet(p)
			case CharFloor:
				m.SetTile(p, world.Floor)
			case CharWall:
				m.SetTile(p, world.Wall)
			default:
				m.SetTile(p, world.Floor)
				log.Warn("unknown prefab character, placed floor instead",
					"prefab", tmpl.Name, "char", string(c), "x", x, "y", y)
			}
		}
	}
}

// Apply places tmpl into m at a location whose distance from the player start
// falls inside the configured band, carves it, and regenerates monster spawns.
// The template's own spawns are kept and the policy's ambient spawns are
// appended after them, skipping duplicates; the registry is not replaced
// wholesale by the ambient set. On failure the map and registry are left
// untouched.
func Apply(m *world.Map, reg *spawns.Registry, tmpl Template, opts Options) (Placement, error) {
	opts = opts.withDefaults()
	if err := tmpl.Validate(); err != nil {
		return Placement{}, err
	}

	start, ok := reg.PlayerStart()
	if !ok {
		return Placement{}, ErrNoPlayerStart
	}
	startIdx, ok := m.TryIndex(start)
	if !ok {
		return Placement{}, fmt.Errorf("%w: player start %v is outside the map", ErrNoPlayerStart, start)
	}

	field := pathfind.NewFlowField(m.Width(), m.Height(), []int{startIdx}, m, opts.FlowDepth)

	placement, err := FindPlacement(m, field, tmpl, opts)
	if err != nil {
		opts.Log.Warn("prefab not placed", "prefab", tmpl.Name, "error", err)
		return Placement{}, err
	}

	superseded := reg.RemoveWithin(placement.Rect)
	Carve(m, reg, tmpl, placement.Anchor(), opts.Log)

	if opts.Policy != nil {
		reg.Merge(opts.Policy.SpawnMonsters(start, opts.Rand))
	}

	opts.Log.Info("prefab placed",
		"prefab", tmpl.Name,
		"x", placement.Rect.X1,
		"y", placement.Rect.Y1,
		"attempts", placement.Attempts,
		"superseded_spawns", superseded,
		"spawns", reg.Len())

	return placement, nil
}
