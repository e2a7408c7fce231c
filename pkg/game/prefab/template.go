// Package prefab stamps hand-authored tile templates into generated maps.
package prefab

import (
	"fmt"
	"strings"
)

// Template characters
const (
	CharWall    = '#'
	CharFloor   = '-'
	CharMonster = 'M'
	CharAmulet  = 'A'
)

// Template is a fixed-size tile layout. Layout rows may be separated by line
// breaks; they are stripped before use.
type Template struct {
	Name   string
	Layout string
	Width  int
	Height int
}

// Fortress is the walled keep guarding the amulet
var Fortress = Template{
	Name: "fortress",
	Layout: `
------------
---######---
---#--A-#---
---#-M--#---
-###----###-
--M------M--
-###----###-
---#----#---
---#----#---
---######---
------------
`,
	Width:  12,
	Height: 11,
}

// Cells returns the layout characters in row-major order with line breaks removed
func (t Template) Cells() []rune {
	cells := make([]rune, 0, t.Width*t.Height)
	for _, c := range t.Layout {
		if c == '\r' || c == '\n' {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

// Validate checks the layout matches the declared size
func (t Template) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: %q has size %dx%d", ErrInvalidTemplate, t.Name, t.Width, t.Height)
	}
	if n := len(t.Cells()); n != t.Width*t.Height {
		return fmt.Errorf("%w: %q has %d cells, want %d", ErrInvalidTemplate, t.Name, n, t.Width*t.Height)
	}
	return nil
}

// String renders the layout as rows, for logs and dumps
func (t Template) String() string {
	cells := t.Cells()
	var sb strings.Builder
	for y := 0; y < t.Height; y++ {
		start := y * t.Width
		end := start + t.Width
		if end > len(cells) {
			break
		}
		sb.WriteString(string(cells[start:end]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
