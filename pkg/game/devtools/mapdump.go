// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"darkfortress/pkg/engine/terminal"
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/state"
	"darkfortress/pkg/game/text"
)

const mapDumpFilename = "map.txt"

// Dump symbols
const (
	GlyphOutline = '*'
	GlyphPlayer  = '@'
	GlyphAmulet  = 'A'
	GlyphMonster = 'M'
	GlyphHidden  = ' '
)

var (
	colorWall    = color.Style{color.FgGray}
	colorFloor   = color.Style{color.FgDarkGray}
	colorOutline = color.Style{color.FgYellow, color.OpBold}
	colorPlayer  = color.Style{color.FgGreen, color.OpBold}
	colorAmulet  = color.Style{color.FgMagenta, color.OpBold}
	colorMonster = color.Style{color.FgRed}
)

// DumpOptions controls which overlays DumpMap draws
type DumpOptions struct {
	Player   *world.Point
	Amulet   *world.Point
	Monsters []world.Point

	// RevealedOnly hides tiles the player has not seen
	RevealedOnly bool

	// Color wraps glyphs in ANSI colours
	Color bool

	// MaxWidth clips each row to this many columns, prefix included. 0 means
	// no limit.
	MaxWidth int
}

// rowPrefixWidth is the width of the "NN " row number prefix
const rowPrefixWidth = 3

// OptionsFor returns overlays for every spawn in level. When w is a terminal
// the dump is coloured and clipped to the terminal width.
func OptionsFor(w io.Writer, level *state.Level) DumpOptions {
	player := level.PlayerStart()
	amulet := level.AmuletStart()
	opts := DumpOptions{
		Player:   &player,
		Amulet:   &amulet,
		Monsters: level.MonsterSpawns(),
	}
	if terminal.IsTerminal(w) {
		opts.Color = true
		opts.MaxWidth = terminal.GetWidth()
	}
	return opts
}

type styledGlyph struct {
	glyph rune
	style color.Style
}

func tileGlyph(m *world.Map, p world.Point, revealedOnly bool) styledGlyph {
	idx := m.IndexOf(p.X, p.Y)
	if revealedOnly && !m.IsRevealed(idx) {
		return styledGlyph{GlyphHidden, nil}
	}
	t := m.TileAt(idx)
	if t == world.Floor {
		return styledGlyph{t.Glyph(), colorFloor}
	}
	return styledGlyph{t.Glyph(), colorWall}
}

// DumpMap writes the map one row per line, each prefixed with its two digit
// row number. An outline, if given, is drawn over everything else.
func DumpMap(w io.Writer, m *world.Map, outline *world.Rect, opts DumpOptions) error {
	monsters := make(map[world.Point]bool, len(opts.Monsters))
	for _, p := range opts.Monsters {
		monsters[p] = true
	}

	cols := m.Width()
	if opts.MaxWidth > 0 && opts.MaxWidth-rowPrefixWidth < cols {
		cols = opts.MaxWidth - rowPrefixWidth
		if cols < 0 {
			cols = 0
		}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < m.Height(); y++ {
		fmt.Fprintf(bw, "%02d ", y)
		for x := 0; x < cols; x++ {
			p := world.Pt(x, y)
			g := tileGlyph(m, p, opts.RevealedOnly)

			switch {
			case opts.Player != nil && *opts.Player == p:
				g = styledGlyph{GlyphPlayer, colorPlayer}
			case opts.Amulet != nil && *opts.Amulet == p:
				g = styledGlyph{GlyphAmulet, colorAmulet}
			case monsters[p]:
				g = styledGlyph{GlyphMonster, colorMonster}
			}
			if outline != nil && outline.OnBorder(p) {
				g = styledGlyph{GlyphOutline, colorOutline}
			}

			if opts.Color && g.style != nil {
				bw.WriteString(g.style.Sprint(string(g.glyph)))
			} else {
				bw.WriteRune(g.glyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpLevel writes a summary header followed by the map with every overlay
func DumpLevel(w io.Writer, level *state.Level) error {
	m := level.Map()
	fmt.Fprintln(w, text.Get("LEVEL_SUMMARY", m.Width(), m.Height(), level.Architecture, level.Seed))
	fmt.Fprintln(w, text.Get("LEGEND"))

	var outline *world.Rect
	if level.FortressPlaced {
		outline = &level.Fortress
	}
	return DumpMap(w, m, outline, OptionsFor(w, level))
}

// DumpLevelToFile writes a full debug dump to map.txt in dir: metadata,
// legend, revealed-only map, full map and the spawn list.
func DumpLevelToFile(level *state.Level, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m := level.Map()
	start := level.PlayerStart()
	amulet := level.AmuletStart()

	fmt.Fprintln(f, "=== MAP DUMP DEBUG (level layout, spawns) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", level.Seed)
	fmt.Fprintf(f, "architecture: %s\n", level.Architecture)
	fmt.Fprintf(f, "width: %d\n", m.Width())
	fmt.Fprintf(f, "height: %d\n", m.Height())
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "player_start: %s\n", start)
	fmt.Fprintf(f, "amulet: %s\n", amulet)
	fmt.Fprintf(f, "rooms: %d\n", len(level.Rooms))
	fmt.Fprintf(f, "fortress_placed: %v\n", level.FortressPlaced)
	if level.FortressPlaced {
		fmt.Fprintf(f, "fortress: %s %dx%d\n", level.Fortress.TopLeft(), level.Fortress.Width(), level.Fortress.Height())
	}
	fmt.Fprintf(f, "revealed_tiles: %d\n", level.RevealedCount())
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintln(f, text.Get("LEGEND"))
	fmt.Fprintln(f, "")

	opts := OptionsFor(f, level)
	opts.Color = false

	fmt.Fprintln(f, "--- Map (revealed tiles only) ---")
	opts.RevealedOnly = true
	if err := DumpMap(f, m, nil, opts); err != nil {
		return absPath, err
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (full layout) ---")
	opts.RevealedOnly = false
	var outline *world.Rect
	if level.FortressPlaced {
		outline = &level.Fortress
	}
	if err := DumpMap(f, m, outline, opts); err != nil {
		return absPath, err
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Monster spawns ---")
	for i, p := range level.MonsterSpawns() {
		fmt.Fprintf(f, "  %d: %s\n", i, p)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
