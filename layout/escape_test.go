package layout

import "testing"

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"plain", "hello", 5},
		{"empty", "", 0},
		{"runes not bytes", "héllo", 5},
		{"color prefix", Red + "abc", 3},
		{"repeated sequence", Red + "a" + Red + "b" + Reset, 2},
		{"background bright", BgBrightWhite + "hi", 2},
		{"attributes", Bold + Italic + "x" + Strikethrough, 1},
		{"unknown sequence is visible", "\x1b[38;5;1mx", 10},
		{"lone escape", "\x1b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleLen(tt.s); got != tt.want {
				t.Errorf("VisibleLen(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestVisibleLen_FiveByteSequence(t *testing.T) {
	s := Green + "abc"
	if len(s) != 8 {
		t.Fatalf("len(%q) = %d, want 8", s, len(s))
	}
	if got := VisibleLen(s); got != 3 {
		t.Errorf("VisibleLen(%q) = %d, want 3", s, got)
	}
}

func TestStrip(t *testing.T) {
	got := Strip(Bold + "a" + BgRed + "b" + Reset + "c")
	if got != "abc" {
		t.Errorf("Strip() = %q, want %q", got, "abc")
	}
}

func TestCatalogue(t *testing.T) {
	if len(Catalogue) != 41 {
		t.Errorf("len(Catalogue) = %d, want 41", len(Catalogue))
	}
	seen := make(map[string]bool)
	for _, seq := range Catalogue {
		if seen[seq] {
			t.Errorf("duplicate sequence %q", seq)
		}
		seen[seq] = true
		if (Attr{}).apply(seq) == (Attr{}) && seq != Reset {
			t.Errorf("sequence %q has no effect", seq)
		}
	}
}

func TestAttr_Apply(t *testing.T) {
	a := Attr{}.apply(Cyan).apply(BgBrightBlack).apply(Reverse)
	want := Attr{FG: ColorCyan, BG: ColorBrightBlack, Mask: AttrReverse}
	if a != want {
		t.Errorf("apply() = %+v, want %+v", a, want)
	}
	if got := a.apply(Reset); got != (Attr{}) {
		t.Errorf("apply(Reset) = %+v, want zero", got)
	}
	if ColorDefault.Palette() != -1 || ColorBlack.Palette() != 0 || ColorBrightWhite.Palette() != 15 {
		t.Error("unexpected palette indices")
	}
}
