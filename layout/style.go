package layout

import "fmt"

// Style is one presentation attribute bound to a container through a Rule.
// It is implemented by Orientation, MinSize, MaxSize, ContentWrap, HAlign,
// VAlign and Margin.
type Style interface {
	isStyle()
}

// Orientation is the axis along which a container lays out its children.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type SizeKind int

const (
	SizeFixed SizeKind = iota
	SizePercent
)

// Size is either a fixed number of cells or a percentage of the extent it
// is resolved against.
type Size struct {
	Kind  SizeKind
	Value int
}

// Percent returns a relative size. Values outside 1..100 are clamped when
// the size is resolved.
func Percent(p int) Size { return Size{Kind: SizePercent, Value: p} }

// Fixed returns an absolute size in cells.
func Fixed(n int) Size { return Size{Kind: SizeFixed, Value: n} }

func (s Size) String() string {
	if s.Kind == SizePercent {
		return fmt.Sprintf("%d%%", s.Value)
	}
	return fmt.Sprintf("%d", s.Value)
}

// resolve returns the size in cells against extent. Fixed sizes are capped
// at extent, percentages never resolve below one cell.
func (s Size) resolve(extent int) int {
	if s.Kind == SizePercent {
		return percentOf(s.Value, extent)
	}
	return min(max(s.Value, 0), max(extent, 0))
}

func percentOf(p, extent int) int {
	p = min(max(p, 1), 100)
	return max(p*extent/100, 1)
}

// MinSize is the lower size bound of a container along its parent's axis.
type MinSize Size

// MaxSize is the upper size bound of a container along its parent's axis.
type MaxSize Size

type ContentWrap int

const (
	NoWrap ContentWrap = iota
	Wrap
)

type Align int

const (
	Left Align = iota
	Right
	Top
	Bottom
	Center
)

func (a Align) String() string {
	switch a {
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Center:
		return "center"
	default:
		return "left"
	}
}

// HAlign positions content horizontally: Left, Right or Center. Any other
// value behaves as Left.
type HAlign Align

// VAlign positions content vertically: Top, Bottom or Center. Any other
// value behaves as Top.
type VAlign Align

// Margin shrinks a container's rectangle before its content and children
// are laid out. Sides are given in left, top, right, bottom order.
type Margin struct {
	Left, Top, Right, Bottom Size
}

// MarginAll returns a margin using s on every side.
func MarginAll(s Size) Margin { return Margin{Left: s, Top: s, Right: s, Bottom: s} }

func (Orientation) isStyle() {}
func (MinSize) isStyle()     {}
func (MaxSize) isStyle()     {}
func (ContentWrap) isStyle() {}
func (HAlign) isStyle()      {}
func (VAlign) isStyle()      {}
func (Margin) isStyle()      {}

// Computed is the fully resolved style of a single container.
type Computed struct {
	Orientation Orientation
	Min, Max    Size
	Wrap        bool
	HAlign      Align
	VAlign      Align
	// Margin is nil if no Margin attribute applied.
	Margin *Margin
}

// Defaults is what an unstyled container resolves to.
var Defaults = Computed{
	Orientation: Horizontal,
	Min:         Fixed(1),
	Max:         Percent(100),
	HAlign:      Left,
	VAlign:      Top,
}

// Compute folds styles over Defaults in order. The last attribute of each
// kind wins.
func Compute(styles []Style) Computed {
	c := Defaults
	for _, st := range styles {
		switch st := st.(type) {
		case Orientation:
			c.Orientation = st
		case MinSize:
			c.Min = Size(st)
		case MaxSize:
			c.Max = Size(st)
		case ContentWrap:
			c.Wrap = st == Wrap
		case HAlign:
			c.HAlign = Align(st)
		case VAlign:
			c.VAlign = Align(st)
		case Margin:
			m := st
			c.Margin = &m
		}
	}
	return c
}
