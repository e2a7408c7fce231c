package prefab

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"darkfortress/pkg/engine/rng"
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/spawns"
)

// constantField reports the same distance for every tile
type constantField float32

func (f constantField) Distance(int) float32 { return float32(f) }

// countingRand records how many draws were made
type countingRand struct {
	r     *rng.RNG
	calls int
}

func (c *countingRand) Range(min, max int) int {
	c.calls++
	return c.r.Range(min, max)
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

var tinyTemplate = Template{
	Name:   "tiny",
	Layout: "A-M\n-#-\nM--\n",
	Width:  3,
	Height: 3,
}

func TestFortressTemplateIsValid(t *testing.T) {
	if err := Fortress.Validate(); err != nil {
		t.Fatalf("Fortress.Validate() = %v", err)
	}
	if got := len(Fortress.Cells()); got != 12*11 {
		t.Errorf("len(Fortress.Cells()) = %d, want %d", got, 12*11)
	}
}

func TestTemplateValidate_SizeMismatch(t *testing.T) {
	bad := Template{Name: "bad", Layout: "--\n-", Width: 2, Height: 2}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("Validate() = %v, want ErrInvalidTemplate", err)
	}
}

func TestTemplateCells_StripsLineBreaks(t *testing.T) {
	tmpl := Template{Layout: "ab\r\ncd\n", Width: 2, Height: 2}
	if got := string(tmpl.Cells()); got != "abcd" {
		t.Errorf("Cells() = %q, want %q", got, "abcd")
	}
	if got := tmpl.String(); got != "ab\ncd\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestCarve_TinyTemplate(t *testing.T) {
	m := world.NewMap(5, 5)
	m.Fill(world.Wall)
	reg := spawns.New()
	reg.Add(world.Pt(4, 4))

	Carve(m, reg, tinyTemplate, world.Pt(0, 0), nil)

	want := map[world.Point]world.TileType{
		world.Pt(0, 0): world.Floor, world.Pt(1, 0): world.Floor, world.Pt(2, 0): world.Floor,
		world.Pt(0, 1): world.Floor, world.Pt(1, 1): world.Wall, world.Pt(2, 1): world.Floor,
		world.Pt(0, 2): world.Floor, world.Pt(1, 2): world.Floor, world.Pt(2, 2): world.Floor,
	}
	for p, tile := range want {
		if got := m.Tile(p); got != tile {
			t.Errorf("Tile(%v) = %v, want %v", p, got, tile)
		}
	}
	// Outside the template nothing changes
	if m.Tile(world.Pt(3, 0)) != world.Wall || m.Tile(world.Pt(0, 3)) != world.Wall {
		t.Error("carve wrote outside the template rect")
	}
	if p, ok := reg.Amulet(); !ok || p != world.Pt(0, 0) {
		t.Errorf("Amulet() = (%v, %v), want (0,0, true)", p, ok)
	}
	got := reg.Monsters()
	if len(got) != 2 || got[0] != world.Pt(2, 0) || got[1] != world.Pt(0, 2) {
		t.Errorf("Monsters() = %v, want [2,0 0,2] (old spawns cleared)", got)
	}
}

func TestCarve_UnknownCharacterBecomesFloor(t *testing.T) {
	var buf bytes.Buffer
	m := world.NewMap(2, 1)
	m.Fill(world.Wall)
	tmpl := Template{Name: "odd", Layout: "X#", Width: 2, Height: 1}

	Carve(m, spawns.New(), tmpl, world.Pt(0, 0), bufferLogger(&buf))

	if m.Tile(world.Pt(0, 0)) != world.Floor {
		t.Errorf("Tile(0,0) = %v, want Floor for unknown char", m.Tile(world.Pt(0, 0)))
	}
	if !strings.Contains(buf.String(), "unknown prefab character") || !strings.Contains(buf.String(), "char=X") {
		t.Errorf("log = %q, want a warning naming the character", buf.String())
	}
}

func TestFindPlacement_BandAcceptsFirstAttempt(t *testing.T) {
	m := world.NewMap(40, 30)
	for seed := int64(1); seed <= 20; seed++ {
		r := &countingRand{r: rng.New(seed)}
		p, err := FindPlacement(m, constantField(100), Fortress, Options{
			MinDistance: 50,
			MaxDistance: 2000,
			Rand:        r,
		})
		if err != nil {
			t.Fatalf("seed %d: FindPlacement() error = %v", seed, err)
		}
		if p.Attempts != 1 {
			t.Errorf("seed %d: Attempts = %d, want 1", seed, p.Attempts)
		}
		if r.calls != 2 {
			t.Errorf("seed %d: rand draws = %d, want 2", seed, r.calls)
		}
		if p.Rect.X2 > m.Width() || p.Rect.Y2 > m.Height() || p.Rect.X1 < 0 || p.Rect.Y1 < 0 {
			t.Errorf("seed %d: rect %+v does not fit the map", seed, p.Rect)
		}
	}
}

func TestFindPlacement_ExhaustsAttempts(t *testing.T) {
	m := world.NewMap(40, 30)
	before := m.Clone()
	r := &countingRand{r: rng.New(3)}
	candidates := 0

	_, err := FindPlacement(m, constantField(0), Fortress, Options{
		MinDistance: 50,
		MaxDistance: 2000,
		Rand:        r,
		OnCandidate: func(world.Rect) { candidates++ },
	})
	if !errors.Is(err, ErrNoPlacement) {
		t.Fatalf("FindPlacement() error = %v, want ErrNoPlacement", err)
	}
	if candidates != DefaultAttempts {
		t.Errorf("candidates = %d, want %d", candidates, DefaultAttempts)
	}
	if r.calls != 2*DefaultAttempts {
		t.Errorf("rand draws = %d, want %d", r.calls, 2*DefaultAttempts)
	}
	if !m.Equal(before) {
		t.Error("map changed during a failed search")
	}
}

func TestFindPlacement_BandIsExclusive(t *testing.T) {
	m := world.NewMap(20, 20)
	for _, d := range []float32{50, 2000} {
		_, err := FindPlacement(m, constantField(d), tinyTemplate, Options{
			MinDistance: 50,
			MaxDistance: 2000,
			Rand:        rng.New(1),
		})
		if !errors.Is(err, ErrNoPlacement) {
			t.Errorf("distance %v: error = %v, want ErrNoPlacement", d, err)
		}
	}
}

// bandField qualifies exactly one tile index
type bandField int

func (f bandField) Distance(idx int) float32 {
	if idx == int(f) {
		return 100
	}
	return 0
}

func TestFindPlacement_AnySingleTileQualifies(t *testing.T) {
	// 3x3 template in a 3x3 map: the only rect covers everything, and just one
	// tile is in band.
	m := world.NewMap(3, 3)
	p, err := FindPlacement(m, bandField(m.IndexOf(2, 2)), tinyTemplate, Options{Rand: rng.New(5)})
	if err != nil {
		t.Fatalf("FindPlacement() error = %v", err)
	}
	if p.Anchor() != world.Pt(0, 0) {
		t.Errorf("Anchor() = %v, want 0,0", p.Anchor())
	}
}

func TestFindPlacement_TemplateTooLarge(t *testing.T) {
	m := world.NewMap(5, 5)
	_, err := FindPlacement(m, constantField(100), Fortress, Options{Rand: rng.New(1)})
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("error = %v, want ErrInvalidTemplate", err)
	}
}

func TestApply_FailureLeavesMapAndRegistryUntouched(t *testing.T) {
	// Every tile of a 20x20 open map is within 38 steps of the start, so
	// nothing can fall inside (50, 2000).
	m := world.NewMap(20, 20)
	m.SetTile(world.Pt(5, 5), world.Wall)
	before := m.Clone()
	reg := spawns.New()
	reg.SetPlayerStart(world.Pt(0, 0))
	reg.SetAmulet(world.Pt(19, 19))
	reg.Add(world.Pt(10, 10))

	var buf bytes.Buffer
	_, err := Apply(m, reg, tinyTemplate, Options{Rand: rng.New(9), Log: bufferLogger(&buf)})
	if !errors.Is(err, ErrNoPlacement) {
		t.Fatalf("Apply() error = %v, want ErrNoPlacement", err)
	}
	if !m.Equal(before) {
		t.Error("map changed after failed placement")
	}
	if got := reg.Monsters(); len(got) != 1 || got[0] != world.Pt(10, 10) {
		t.Errorf("Monsters() = %v, want untouched [10,10]", got)
	}
	if p, _ := reg.Amulet(); p != world.Pt(19, 19) {
		t.Errorf("Amulet() = %v, want untouched 19,19", p)
	}
	if !strings.Contains(buf.String(), "prefab not placed") {
		t.Errorf("log = %q, want failure diagnostic", buf.String())
	}
}

func TestApply_PlacesFortressAndRegeneratesSpawns(t *testing.T) {
	m := world.NewMap(80, 50)
	reg := spawns.New()
	reg.SetPlayerStart(world.Pt(0, 0))
	reg.Add(world.Pt(79, 49))

	ambient := []world.Point{world.Pt(70, 1), world.Pt(1, 45)}
	policyCalls := 0
	policy := SpawnPolicyFunc(func(start world.Point, r Rand) []world.Point {
		policyCalls++
		if start != world.Pt(0, 0) {
			t.Errorf("policy start = %v, want 0,0", start)
		}
		return ambient
	})

	var candidates []world.Rect
	p, err := Apply(m, reg, Fortress, Options{
		Rand:        rng.New(11),
		Policy:      policy,
		OnCandidate: func(r world.Rect) { candidates = append(candidates, r) },
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if policyCalls != 1 {
		t.Errorf("policy calls = %d, want 1", policyCalls)
	}
	if len(candidates) != p.Attempts || candidates[len(candidates)-1] != p.Rect {
		t.Errorf("candidates = %v, want last to be the placement %v", candidates, p.Rect)
	}

	amulet, ok := reg.Amulet()
	if !ok || amulet != p.Anchor().Add(world.Pt(6, 2)) {
		t.Errorf("Amulet() = %v, want %v", amulet, p.Anchor().Add(world.Pt(6, 2)))
	}
	// The fortress wall ring is carved
	if m.Tile(p.Anchor().Add(world.Pt(3, 1))) != world.Wall {
		t.Error("fortress wall missing")
	}

	marked := []world.Point{
		p.Anchor().Add(world.Pt(5, 3)),
		p.Anchor().Add(world.Pt(2, 5)),
		p.Anchor().Add(world.Pt(9, 5)),
	}
	for _, pt := range append(marked, ambient...) {
		if !reg.Contains(pt) {
			t.Errorf("registry missing spawn %v", pt)
		}
	}
	if reg.Contains(world.Pt(79, 49)) {
		t.Error("pre-placement spawn survived the carve")
	}
	if reg.Len() != len(marked)+len(ambient) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(marked)+len(ambient))
	}
}

func TestApply_RequiresPlayerStart(t *testing.T) {
	_, err := Apply(world.NewMap(30, 30), spawns.New(), tinyTemplate, Options{Rand: rng.New(1)})
	if !errors.Is(err, ErrNoPlayerStart) {
		t.Errorf("Apply() error = %v, want ErrNoPlayerStart", err)
	}
}
