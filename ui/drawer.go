package ui

import (
	"github.com/cansyan/boxes/layout"
	"github.com/gdamore/tcell/v2"
)

// Drawer paints a container tree on a tcell screen. Render computes the
// geometry, Display puts the content on screen; children are drawn after
// their parent.
type Drawer struct {
	screen tcell.Screen
	style  tcell.Style
	units  []layout.Unit
}

func NewDrawer(s tcell.Screen, style tcell.Style) *Drawer {
	return &Drawer{screen: s, style: style}
}

// Render clears the screen and lays out root over its full size.
func (d *Drawer) Render(root *layout.Container, rules []layout.Rule) {
	w, h := d.screen.Size()
	d.screen.Fill(' ', d.style)
	d.units = layout.Distribute(root, rules, w, h)
}

// Display places the content of every unit of the last Render and shows
// the result.
func (d *Drawer) Display() {
	for _, u := range d.units {
		for _, c := range layout.Place(u) {
			ch := c.Ch
			if c.Attr.Mask&layout.AttrHidden != 0 {
				ch = ' '
			}
			d.screen.SetContent(c.X, c.Y, ch, nil, cellStyle(d.style, c.Attr))
		}
	}
	d.screen.Show()
}

func (d *Drawer) Units() []layout.Unit { return d.units }

// cellStyle applies a on top of base. Default colors keep the base ones.
func cellStyle(base tcell.Style, a layout.Attr) tcell.Style {
	st := base
	if a.FG != layout.ColorDefault {
		st = st.Foreground(tcell.PaletteColor(a.FG.Palette()))
	}
	if a.BG != layout.ColorDefault {
		st = st.Background(tcell.PaletteColor(a.BG.Palette()))
	}
	m := a.Mask
	if m&layout.AttrBold != 0 {
		st = st.Bold(true)
	}
	if m&layout.AttrDim != 0 {
		st = st.Dim(true)
	}
	if m&layout.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if m&layout.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if m&layout.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if m&layout.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if m&layout.AttrStrikethrough != 0 {
		st = st.StrikeThrough(true)
	}
	return st
}
