package ui

import (
	"strings"
	"testing"

	"github.com/cansyan/boxes/layout"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// screenLines returns the screen content, one string per row.
func screenLines(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	lines := make([]string, h)
	for y := range h {
		var b strings.Builder
		for x := range w {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		lines[y] = b.String()
	}
	return lines
}

func TestDrawer(t *testing.T) {
	s := newSimScreen(t, 10, 3)
	d := NewDrawer(s, tcell.StyleDefault)

	root := layout.NewContainer("root", "", nil,
		layout.NewContainer("a", "ab", nil),
		layout.NewContainer("b", "cd", []string{"right"}),
	)
	rules := []layout.Rule{layout.ForClass("right", layout.HAlign(layout.Right), layout.VAlign(layout.Bottom))}

	d.Render(root, rules)
	d.Display()

	want := []string{
		"ab        ",
		"          ",
		"        cd",
	}
	if diff := cmp.Diff(want, screenLines(s)); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	if got := len(d.Units()); got != 3 {
		t.Errorf("len(Units()) = %d, want 3", got)
	}
}

func TestDrawer_RenderClears(t *testing.T) {
	s := newSimScreen(t, 6, 1)
	d := NewDrawer(s, tcell.StyleDefault)

	d.Render(layout.NewContainer("root", "abcdef", nil), nil)
	d.Display()
	d.Render(layout.NewContainer("root", "xy", nil), nil)
	d.Display()

	if got := screenLines(s)[0]; got != "xy    " {
		t.Errorf("screen = %q, want %q", got, "xy    ")
	}
}

func TestDrawer_Attributes(t *testing.T) {
	s := newSimScreen(t, 5, 1)
	d := NewDrawer(s, tcell.StyleDefault)

	content := layout.Bold + layout.Red + layout.BgBrightBlue + "a" + layout.Reset + "b" + layout.Hidden + "c"
	d.Render(layout.NewContainer("root", content, nil), nil)
	d.Display()

	if got := screenLines(s)[0]; got != "ab   " {
		t.Errorf("screen = %q, want %q", got, "ab   ")
	}

	_, _, st, _ := s.GetContent(0, 0)
	fg, bg, attrs := st.Decompose()
	if fg != tcell.PaletteColor(1) || bg != tcell.PaletteColor(12) {
		t.Errorf("colors = %v/%v, want palette 1/12", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("first cell is not bold")
	}

	_, _, st, _ = s.GetContent(1, 0)
	if st != tcell.StyleDefault {
		t.Errorf("style after reset = %v, want default", st)
	}
}

func TestCellStyle_KeepsBaseColors(t *testing.T) {
	base := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	st := cellStyle(base, layout.Attr{FG: layout.ColorGreen})
	fg, bg, _ := st.Decompose()
	if fg != tcell.PaletteColor(2) {
		t.Errorf("fg = %v, want palette 2", fg)
	}
	if bg != tcell.ColorBlack {
		t.Errorf("bg = %v, want the base background", bg)
	}

	if got := cellStyle(base, layout.Attr{}); got != base {
		t.Errorf("cellStyle(zero) = %v, want base", got)
	}
}
