// Package systems provides the world grid, organism store and the rule
// systems that move, feed, breed and fight organisms.
package systems

import (
	"image/color"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/config"
)

// Palette holds display colors for non-organism cells.
type Palette struct {
	Background color.RGBA
	Food       color.RGBA
	Poison     color.RGBA
}

// PaletteFromConfig reads the palette from a loaded config.
func PaletteFromConfig(cfg *config.Config) Palette {
	return Palette{
		Background: cfg.Derived.Background,
		Food:       cfg.Derived.Food,
		Poison:     cfg.Derived.Poison,
	}
}

// Grid is the dense toroidal world. Cells are stored as parallel
// row-major slices so the color slice can be handed to a renderer as is.
type Grid struct {
	width, height int
	palette       Palette

	kinds     []components.Kind
	occupants []components.OrganismID
	colors    []color.RGBA
}

// NewGrid creates a grid with every cell empty.
func NewGrid(width, height int, palette Palette) *Grid {
	n := width * height
	g := &Grid{
		width:     width,
		height:    height,
		palette:   palette,
		kinds:     make([]components.Kind, n),
		occupants: make([]components.OrganismID, n),
		colors:    make([]color.RGBA, n),
	}
	for i := 0; i < n; i++ {
		g.Clear(i)
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.kinds) }

// Wrap applies toroidal wrapping to a position.
func (g *Grid) Wrap(p components.Pos) components.Pos {
	p.X = (p.X%g.width + g.width) % g.width
	p.Y = (p.Y%g.height + g.height) % g.height
	return p
}

// Index returns the linear cell index of a position, wrapping first.
func (g *Grid) Index(p components.Pos) int {
	p = g.Wrap(p)
	return p.Y*g.width + p.X
}

// PosOf returns the position of a linear cell index.
func (g *Grid) PosOf(i int) components.Pos {
	return components.Pos{X: i % g.width, Y: i / g.width}
}

// Kind returns what cell i holds.
func (g *Grid) Kind(i int) components.Kind { return g.kinds[i] }

// Cell returns a copy of cell i.
func (g *Grid) Cell(i int) components.Cell {
	return components.Cell{Kind: g.kinds[i], Occupant: g.occupants[i], Color: g.colors[i]}
}

// CellAt returns a copy of the cell at a position.
func (g *Grid) CellAt(p components.Pos) components.Cell {
	return g.Cell(g.Index(p))
}

// PlaceResource turns an empty cell into food or poison.
// Returns false, leaving the cell untouched, if the cell is not empty or
// kind is not a resource.
func (g *Grid) PlaceResource(i int, kind components.Kind) bool {
	if g.kinds[i] != components.KindEmpty {
		return false
	}
	switch kind {
	case components.KindFood:
		g.colors[i] = g.palette.Food
	case components.KindPoison:
		g.colors[i] = g.palette.Poison
	default:
		return false
	}
	g.kinds[i] = kind
	g.occupants[i] = components.NoOrganism
	return true
}

// PlaceOrganism marks cell i occupied by id, overwriting whatever was there.
// Callers evacuate the organism's previous cell first.
func (g *Grid) PlaceOrganism(i int, id components.OrganismID, c color.RGBA) {
	g.kinds[i] = components.KindOccupied
	g.occupants[i] = id
	g.colors[i] = c
}

// Clear empties cell i.
func (g *Grid) Clear(i int) {
	g.kinds[i] = components.KindEmpty
	g.occupants[i] = components.NoOrganism
	g.colors[i] = g.palette.Background
}

// Occupant returns the organism referenced by cell i, if the cell is occupied.
// The reference is weak: resolve it through Store.Get.
func (g *Grid) Occupant(i int) (components.OrganismID, bool) {
	if g.kinds[i] != components.KindOccupied {
		return components.NoOrganism, false
	}
	return g.occupants[i], true
}

// Colors exposes the row-major color buffer. Callers must treat it as read-only.
func (g *Grid) Colors() []color.RGBA {
	return g.colors
}

// Counts tallies cells by kind.
func (g *Grid) Counts() (food, poison, occupied int) {
	for _, k := range g.kinds {
		switch k {
		case components.KindFood:
			food++
		case components.KindPoison:
			poison++
		case components.KindOccupied:
			occupied++
		}
	}
	return food, poison, occupied
}

// FindEmptyNear returns the nearest empty cell to index from, scanning
// backward to the start of the grid first and then forward to the end.
// The cell at from itself is never returned.
func (g *Grid) FindEmptyNear(from int) (int, bool) {
	for i := from - 1; i >= 0; i-- {
		if g.kinds[i] == components.KindEmpty {
			return i, true
		}
	}
	for i := from + 1; i < len(g.kinds); i++ {
		if g.kinds[i] == components.KindEmpty {
			return i, true
		}
	}
	return 0, false
}

// Scan visits every cell of the (2r+1)x(2r+1) toroidal block around center.
// dx and dy are the unwrapped offsets from center.
func (g *Grid) Scan(center components.Pos, radius int, fn func(dx, dy int, kind components.Kind)) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			i := g.Index(center.Add(dx, dy))
			fn(dx, dy, g.kinds[i])
		}
	}
}
