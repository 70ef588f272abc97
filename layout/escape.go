package layout

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Recognized SGR sequences. Content may embed them to color parts of a
// string; they don't occupy cells.
const (
	Reset = "\x1b[0m"

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	BrightBlack   = "\x1b[90m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
	BrightWhite   = "\x1b[97m"

	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"
	BgWhite   = "\x1b[47m"

	BgBrightBlack   = "\x1b[100m"
	BgBrightRed     = "\x1b[101m"
	BgBrightGreen   = "\x1b[102m"
	BgBrightYellow  = "\x1b[103m"
	BgBrightBlue    = "\x1b[104m"
	BgBrightMagenta = "\x1b[105m"
	BgBrightCyan    = "\x1b[106m"
	BgBrightWhite   = "\x1b[107m"

	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Blink         = "\x1b[5m"
	Reverse       = "\x1b[7m"
	Hidden        = "\x1b[8m"
	Strikethrough = "\x1b[9m"
)

// Catalogue lists every recognized sequence.
var Catalogue = []string{
	Reset,
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
	BrightBlack, BrightRed, BrightGreen, BrightYellow,
	BrightBlue, BrightMagenta, BrightCyan, BrightWhite,
	BgBlack, BgRed, BgGreen, BgYellow, BgBlue, BgMagenta, BgCyan, BgWhite,
	BgBrightBlack, BgBrightRed, BgBrightGreen, BgBrightYellow,
	BgBrightBlue, BgBrightMagenta, BgBrightCyan, BgBrightWhite,
	Bold, Dim, Italic, Underline, Blink, Reverse, Hidden, Strikethrough,
}

// matchEscape returns the catalogue sequence s starts with.
func matchEscape(s string) (string, bool) {
	if len(s) == 0 || s[0] != '\x1b' {
		return "", false
	}
	for _, seq := range Catalogue {
		if strings.HasPrefix(s, seq) {
			return seq, true
		}
	}
	return "", false
}

// scan calls fn for each rune of s outside recognized sequences and
// seq for each recognized sequence, in order.
func scan(s string, seq func(string), fn func(rune)) {
	for len(s) > 0 {
		if e, ok := matchEscape(s); ok {
			if seq != nil {
				seq(e)
			}
			s = s[len(e):]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		fn(r)
		s = s[size:]
	}
}

// VisibleLen returns the number of runes of s which end up on screen.
// Escape sequences outside the catalogue count as visible.
func VisibleLen(s string) int {
	n := 0
	scan(s, nil, func(rune) { n++ })
	return n
}

// Strip removes every recognized sequence from s.
func Strip(s string) string {
	var b strings.Builder
	scan(s, nil, func(r rune) { b.WriteRune(r) })
	return b.String()
}

// Color is one of the 16 palette colors of the catalogue. The zero value
// is the terminal's default color.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Palette returns the ANSI palette index of c, or -1 for ColorDefault.
func (c Color) Palette() int { return int(c) - 1 }

type AttrMask uint16

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// Attr is the graphic rendition a cell is drawn with.
type Attr struct {
	FG, BG Color
	Mask   AttrMask
}

// apply returns a with the catalogue sequence seq applied.
func (a Attr) apply(seq string) Attr {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(seq, "\x1b["), "m"))
	if err != nil {
		return a
	}
	switch {
	case n == 0:
		return Attr{}
	case n >= 30 && n <= 37:
		a.FG = ColorBlack + Color(n-30)
	case n >= 90 && n <= 97:
		a.FG = ColorBrightBlack + Color(n-90)
	case n >= 40 && n <= 47:
		a.BG = ColorBlack + Color(n-40)
	case n >= 100 && n <= 107:
		a.BG = ColorBrightBlack + Color(n-100)
	case n == 1:
		a.Mask |= AttrBold
	case n == 2:
		a.Mask |= AttrDim
	case n == 3:
		a.Mask |= AttrItalic
	case n == 4:
		a.Mask |= AttrUnderline
	case n == 5:
		a.Mask |= AttrBlink
	case n == 7:
		a.Mask |= AttrReverse
	case n == 8:
		a.Mask |= AttrHidden
	case n == 9:
		a.Mask |= AttrStrikethrough
	}
	return a
}
