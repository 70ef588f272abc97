// Package layout turns a tree of containers and a list of style rules into
// positioned rectangles on a character grid, and decides where each
// rectangle's content lands.
//
// A layout pass is pure: Distribute resolves every container's styles,
// shares the parent's extent among its children and returns the flat,
// pre-order list of units; Place maps one unit to cells. Painting the cells
// is left to the caller.
package layout

import "math"

type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Edges holds a resolved margin in cells.
type Edges struct {
	Left, Top, Right, Bottom int
}

// Unit is a positioned, sized container ready for content placement.
type Unit struct {
	ID string
	Rect
	Orientation Orientation
	Wrap        bool
	HAlign      Align
	VAlign      Align
	// Margin is what was cut off the rectangle the parent offered.
	Margin  Edges
	Content string
	// Depth is 0 for the root.
	Depth int
}

// Distribute lays out the tree below root on a width x height grid and
// returns one unit per container in pre-order, so a parent always precedes
// its descendants. Dimensions below one cell are treated as one cell.
func Distribute(root *Container, rules []Rule, width, height int) []Unit {
	if root == nil {
		return nil
	}
	r := Rect{W: max(width, 1), H: max(height, 1)}
	return distribute(nil, root, rules, r, 0)
}

func distribute(units []Unit, c *Container, rules []Rule, r Rect, depth int) []Unit {
	cs := Compute(Resolve(c, rules))

	var margin Edges
	if cs.Margin != nil {
		r, margin = shrink(r, *cs.Margin)
	}

	units = append(units, Unit{
		ID:          c.ID,
		Rect:        r,
		Orientation: cs.Orientation,
		Wrap:        cs.Wrap,
		HAlign:      cs.HAlign,
		VAlign:      cs.VAlign,
		Margin:      margin,
		Content:     c.Content,
		Depth:       depth,
	})
	if len(c.Children) == 0 {
		return units
	}

	horizontal := cs.Orientation == Horizontal
	extent := r.H
	if horizontal {
		extent = r.W
	}

	sizes := childSizes(c.Children, rules, extent)
	offset := 0
	for i, child := range c.Children {
		cr := r
		if horizontal {
			cr.X += offset
			cr.W = sizes[i]
		} else {
			cr.Y += offset
			cr.H = sizes[i]
		}
		units = distribute(units, child, rules, cr, depth+1)
		offset += sizes[i]
	}
	return units
}

// shrink cuts margin off r. A side never takes the whole extent and the
// remaining width and height are at least one cell.
func shrink(r Rect, m Margin) (Rect, Edges) {
	e := Edges{
		Left:   marginOf(m.Left, r.W),
		Top:    marginOf(m.Top, r.H),
		Right:  marginOf(m.Right, r.W),
		Bottom: marginOf(m.Bottom, r.H),
	}
	r.X += e.Left
	r.Y += e.Top
	r.W = max(r.W-e.Left-e.Right, 1)
	r.H = max(r.H-e.Top-e.Bottom, 1)
	return r, e
}

func marginOf(s Size, extent int) int {
	v := max(s.Value, 0)
	if s.Kind == SizePercent {
		v = percentOf(s.Value, extent)
	}
	if v >= extent {
		v = max(extent-1, 0)
	}
	return v
}

// childSizes computes every child's extent along the parent's axis.
//
// A child's ideal size is the larger of its resolved MinSize and MaxSize.
// The ideal sizes are then scaled so they add up to extent, give or take
// rounding, which is not corrected. A child may round down to zero cells.
// When there is nothing to scale against, the ideal sizes are used as is,
// floored at one cell.
func childSizes(children []*Container, rules []Rule, extent int) []int {
	ideal := make([]int, len(children))
	sum := 0
	for i, child := range children {
		cs := Compute(Resolve(child, rules))
		ideal[i] = max(cs.Min.resolve(extent), cs.Max.resolve(extent))
		sum += ideal[i]
	}

	sizes := make([]int, len(ideal))
	if extent <= 0 || sum <= 0 {
		for i, v := range ideal {
			sizes[i] = max(v, 1)
		}
		return sizes
	}

	scale := float64(sum) / float64(extent)
	for i, v := range ideal {
		sizes[i] = int(math.Round(float64(v) / scale))
	}
	return sizes
}
