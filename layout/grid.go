package layout

import "strings"

// Grid is an in-memory character grid, handy wherever a terminal isn't:
// tests, dumps, clipboard export.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid returns a w x h grid filled with spaces.
func NewGrid(w, h int) *Grid {
	w, h = max(w, 0), max(h, 0)
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	for i := range g.cells {
		g.cells[i] = Cell{X: i % w, Y: i / w, Ch: ' '}
	}
	return g
}

// Render lays out root on a w x h grid and places every unit's content in
// pre-order.
func Render(root *Container, rules []Rule, w, h int) *Grid {
	g := NewGrid(w, h)
	for _, u := range Distribute(root, rules, w, h) {
		g.Paint(Place(u))
	}
	return g
}

func (g *Grid) Size() (int, int) { return g.w, g.h }

// Set stores c, dropping it if it lies outside the grid.
func (g *Grid) Set(c Cell) {
	if c.X < 0 || c.Y < 0 || c.X >= g.w || c.Y >= g.h {
		return
	}
	g.cells[c.Y*g.w+c.X] = c
}

func (g *Grid) Paint(cells []Cell) {
	for _, c := range cells {
		g.Set(c)
	}
}

// At returns the cell at (x, y). The zero Cell is returned outside the
// grid.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return Cell{}
	}
	return g.cells[y*g.w+x]
}

// Lines returns one string per row, hidden cells as spaces.
func (g *Grid) Lines() []string {
	lines := make([]string, g.h)
	var b strings.Builder
	for y := range g.h {
		b.Reset()
		for _, c := range g.cells[y*g.w : (y+1)*g.w] {
			if c.Attr.Mask&AttrHidden != 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Ch)
		}
		lines[y] = b.String()
	}
	return lines
}

func (g *Grid) String() string { return strings.Join(g.Lines(), "\n") }
