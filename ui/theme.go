package ui

import (
	"os"
	"strings"

	"github.com/cansyan/boxes/layout"
	"github.com/gdamore/tcell/v2"
)

var Theme = selectTheme()

func selectTheme() ColorTheme {
	if detectLightTerminal() {
		return NewBreakersTheme()
	}
	return NewMarianaTheme()
}

// detectLightTerminal detects if terminal has a light background via COLORFGBG.
// iTerm2 and other terminals set this as "foreground;background".
// Background 7 or 15 indicates light, 0-6 and 8 indicate dark.
func detectLightTerminal() bool {
	colorfgbg := os.Getenv("COLORFGBG")
	if colorfgbg == "" {
		return false
	}
	parts := strings.Split(colorfgbg, ";")
	if len(parts) != 2 {
		return false
	}
	bg := parts[1]
	return bg == "7" || bg == "15"
}

// ColorTheme is the base look of the screen. Cells without their own
// colors are drawn with Foreground and Background.
type ColorTheme struct {
	Foreground string
	Background string
	// Accent is a catalogue sequence prepended to highlighted content.
	Accent string
}

// Style returns the tcell style cells start from.
func (t ColorTheme) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.GetColor(t.Foreground)).
		Background(tcell.GetColor(t.Background))
}

func NewBreakersTheme() ColorTheme {
	return ColorTheme{
		Foreground: "#333333", // grey3
		Background: "#fbffff", // white5
		Accent:     layout.Bold + layout.Blue,
	}
}

func NewMarianaTheme() ColorTheme {
	return ColorTheme{
		Foreground: "#d8dee9", // white3
		Background: "#303841", // blue3
		Accent:     layout.Bold + layout.BrightYellow,
	}
}
