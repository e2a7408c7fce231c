package devtools

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/state"
	"darkfortress/pkg/game/text"
)

const screenshotStyle = `    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .amulet { color: #bb86fc; font-weight: bold; }
        .monster { color: #ff4444; }
        .wall { color: #666; }
        .floor { color: #888; }
        .fortress { color: #ffff00; }
        .summary { color: #888; margin: 5px 0; }
    </style>
`

// WriteLevelHTML renders the whole level as a standalone HTML page
func WriteLevelHTML(w io.Writer, level *state.Level) error {
	m := level.Map()
	start := level.PlayerStart()
	amulet := level.AmuletStart()

	monsters := make(map[world.Point]bool)
	for _, p := range level.MonsterSpawns() {
		monsters[p] = true
	}

	var html strings.Builder
	html.WriteString("<!DOCTYPE html>\n<html>\n<head>\n    <meta charset=\"UTF-8\">\n")
	html.WriteString("    <title>Dark Fortress - Level</title>\n")
	html.WriteString(screenshotStyle)
	html.WriteString("</head>\n<body>\n")

	html.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n",
		text.Get("LEVEL_SUMMARY", m.Width(), m.Height(), level.Architecture, level.Seed)))

	html.WriteString(`    <div class="map-container">` + "\n")
	for y := 0; y < m.Height(); y++ {
		html.WriteString(`        <div class="map-row">`)
		for x := 0; x < m.Width(); x++ {
			p := world.Pt(x, y)
			icon, class := tileHTMLInfo(level, p, start, amulet, monsters)
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		html.WriteString("</div>\n")
	}
	html.WriteString(`    </div>` + "\n")

	html.WriteString(fmt.Sprintf(`    <div class="summary">%s</div>`+"\n", text.Get("MONSTER_COUNT", len(monsters))))
	html.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, html.String())
	return err
}

// tileHTMLInfo returns the icon and CSS class for a tile
func tileHTMLInfo(level *state.Level, p, start, amulet world.Point, monsters map[world.Point]bool) (string, string) {
	switch {
	case p == start:
		return "@", "player"
	case p == amulet:
		return "A", "amulet"
	case monsters[p]:
		return "M", "monster"
	}

	t := level.Map().Tile(p)
	inFortress := level.FortressPlaced && level.Fortress.Contains(p)
	if t == world.Floor {
		if inFortress {
			return "·", "fortress"
		}
		return "·", "floor"
	}
	if inFortress {
		return "▒", "fortress"
	}
	return "▒", "wall"
}

// SaveLevelHTML writes the level to a timestamped HTML file in the working
// directory and returns its name
func SaveLevelHTML(level *state.Level) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("level-%d-%s.html", level.Seed, timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLevelHTML(f, level); err != nil {
		return filename, err
	}
	return filename, nil
}
