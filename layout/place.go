package layout

// Cell is a single character at an absolute grid position.
type Cell struct {
	X, Y int
	Ch   rune
	Attr Attr
}

// Place computes where the content of u lands on the grid. Cells never
// leave u's rectangle. Recognized escape sequences are not placed; they set
// the Attr of the cells following them.
func Place(u Unit) []Cell {
	n := VisibleLen(u.Content)
	if n == 0 || u.W <= 0 || u.H <= 0 {
		return nil
	}

	right := u.X + u.W
	bottom := u.Y + u.H - 1
	x, y := startColumn(u, n), startRow(u)

	cells := make([]Cell, 0, min(n, u.W*u.H))
	var attr Attr
	done := false
	scan(u.Content, func(seq string) { attr = attr.apply(seq) }, func(r rune) {
		if done {
			return
		}
		if x >= right {
			if !u.Wrap {
				done = true
				return
			}
			x = u.X
			y++
		}
		if y > bottom {
			done = true
			return
		}
		cells = append(cells, Cell{X: x, Y: y, Ch: r, Attr: attr})
		x++
	})
	return cells
}

func startColumn(u Unit, n int) int {
	x := u.X
	switch u.HAlign {
	case Right:
		x = u.X + u.W - n
	case Center:
		x = u.X + (u.W-n)/2
	}
	return max(x, u.X)
}

func startRow(u Unit) int {
	switch u.VAlign {
	case Center:
		return u.Y + u.H/2
	case Bottom:
		return u.Y + u.H - 1
	}
	return u.Y
}
