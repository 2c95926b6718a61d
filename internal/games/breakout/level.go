// Package breakout implements a Breakout/Arkanoid-style brick breaker game.
package breakout

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Standard brick, destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

// Brick is one slot of the brick arena.
type Brick struct {
	Type   BrickType
	Row    int
	Col    int
	Weight int  // Score multiplier; the row weight unless the layout overrides it
	Alive  bool // Whether brick is still present
	HP     int  // Hit points remaining
	Rect   core.Rect
}

// Destructible reports whether the brick counts toward clearing the level.
func (b Brick) Destructible() bool {
	return b.Type == BrickNormal || b.Type == BrickHard
}

// Layout is a named ASCII brick map.
type Layout struct {
	ID    string
	Name  string
	Cols  int
	Rows  int
	cells [][]byte
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'#' = normal brick
//	'.' = empty
//	'1'-'9' = normal brick with a fixed weight
//	'H' = hard brick (2 HP)
//	'X' = solid/indestructible brick
func ParseLayout(id, name string, lines []string) *Layout {
	l := &Layout{ID: id, Name: name, Rows: len(lines)}
	for _, line := range lines {
		l.Cols = max(l.Cols, len(line))
	}
	for _, line := range lines {
		row := make([]byte, l.Cols)
		for col := range l.Cols {
			row[col] = '.'
			if col < len(line) {
				row[col] = line[col]
			}
		}
		l.cells = append(l.cells, row)
	}
	return l
}

// Arena builds the dense brick slice for the layout. Rows nearer the top
// weigh more: the bottom row has weight 1, the one above it 2, and so on.
func (l *Layout) Arena() []Brick {
	var bricks []Brick
	for row, line := range l.cells {
		weight := l.Rows - row
		for col, ch := range line {
			b := Brick{Row: row, Col: col, Weight: weight, Alive: true, HP: 1}
			switch {
			case ch == '#':
				b.Type = BrickNormal
			case ch >= '1' && ch <= '9':
				b.Type = BrickNormal
				b.Weight = int(ch - '0')
			case ch == 'H' || ch == 'h':
				b.Type = BrickHard
				b.HP = 2
			case ch == 'X' || ch == 'x':
				b.Type = BrickSolid
				b.Weight = 0
			default:
				continue
			}
			bricks = append(bricks, b)
		}
	}
	return bricks
}

// CountAlive returns the number of remaining destructible bricks.
func CountAlive(bricks []Brick) int {
	count := 0
	for _, b := range bricks {
		if b.Alive && b.Destructible() {
			count++
		}
	}
	return count
}

//go:embed layouts.yaml
var layoutsYAML []byte

var builtinLayouts = sync.OnceValue(func() []*Layout {
	layouts, err := ParseLayouts(layoutsYAML)
	if err != nil {
		panic(err)
	}
	return layouts
})

// BuiltinLevels returns the embedded layouts in play order.
func BuiltinLevels() []*Layout {
	return builtinLayouts()
}

type layoutDoc struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseLayouts reads a YAML list of layouts. Every layout needs an id and
// at least one row made of brick characters.
func ParseLayouts(data []byte) ([]*Layout, error) {
	var docs []layoutDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("breakout: parse layouts: %w", err)
	}
	if len(docs) == 0 {
		return nil, errors.New("breakout: no layouts")
	}
	layouts := make([]*Layout, 0, len(docs))
	for i, d := range docs {
		if d.ID == "" || len(d.Rows) == 0 {
			return nil, fmt.Errorf("breakout: layout %d: id and rows are required", i)
		}
		for r, row := range d.Rows {
			if j := strings.IndexFunc(row, func(c rune) bool { return !validBrick(c) }); j >= 0 {
				return nil, fmt.Errorf("breakout: layout %q row %d: bad brick %q", d.ID, r, row[j])
			}
		}
		name := d.Name
		if name == "" {
			name = d.ID
		}
		layouts = append(layouts, ParseLayout(d.ID, name, d.Rows))
	}
	return layouts, nil
}

func validBrick(c rune) bool {
	return strings.ContainsRune(".#HhXx", c) || (c >= '1' && c <= '9')
}

// LayoutAt returns a layout by index, wrapping around.
func LayoutAt(index int) *Layout {
	layouts := BuiltinLevels()
	n := len(layouts)
	return layouts[(index%n+n)%n]
}

// LayoutCount returns the total number of built-in layouts.
func LayoutCount() int {
	return len(BuiltinLevels())
}
