package devtools

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/state"
)

type pointDoc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type fortressDoc struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LevelDoc is the YAML form of a level
type LevelDoc struct {
	Seed         int64        `yaml:"seed"`
	Architecture string       `yaml:"architecture"`
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	PlayerStart  pointDoc     `yaml:"player_start"`
	Amulet       pointDoc     `yaml:"amulet"`
	Monsters     []pointDoc   `yaml:"monsters"`
	Fortress     *fortressDoc `yaml:"fortress,omitempty"`
	Tiles        []string     `yaml:"tiles"`
}

func toPointDoc(p world.Point) pointDoc {
	return pointDoc{X: p.X, Y: p.Y}
}

// NewLevelDoc captures level as a LevelDoc. Tiles are stored one string per
// row using the dump glyphs.
func NewLevelDoc(level *state.Level) LevelDoc {
	m := level.Map()
	doc := LevelDoc{
		Seed:         level.Seed,
		Architecture: level.Architecture,
		Width:        m.Width(),
		Height:       m.Height(),
		PlayerStart:  toPointDoc(level.PlayerStart()),
		Amulet:       toPointDoc(level.AmuletStart()),
	}
	for _, p := range level.MonsterSpawns() {
		doc.Monsters = append(doc.Monsters, toPointDoc(p))
	}
	if level.FortressPlaced {
		doc.Fortress = &fortressDoc{
			X:      level.Fortress.X1,
			Y:      level.Fortress.Y1,
			Width:  level.Fortress.Width(),
			Height: level.Fortress.Height(),
		}
	}

	var row strings.Builder
	for y := 0; y < m.Height(); y++ {
		row.Reset()
		for x := 0; x < m.Width(); x++ {
			row.WriteRune(m.Tile(world.Pt(x, y)).Glyph())
		}
		doc.Tiles = append(doc.Tiles, row.String())
	}
	return doc
}

// MarshalLevelYAML encodes level as YAML
func MarshalLevelYAML(level *state.Level) ([]byte, error) {
	return yaml.Marshal(NewLevelDoc(level))
}

// WriteLevelYAML writes level to path as YAML
func WriteLevelYAML(path string, level *state.Level) error {
	data, err := MarshalLevelYAML(level)
	if err != nil {
		return fmt.Errorf("encoding level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
