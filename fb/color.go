package fb

import "github.com/gdamore/tcell"

// Color is one of the 16 VGA-style palette entries.
type Color int

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// tcellPalette maps the VGA-style palette onto tcell's named ANSI colors,
// so the framebuffer can be driven through a real tcell.Screen instead of
// hand-written SGR escapes.
var tcellPalette = [16]tcell.Color{
	tcell.ColorBlack, tcell.ColorNavy, tcell.ColorGreen, tcell.ColorTeal,
	tcell.ColorMaroon, tcell.ColorPurple, tcell.ColorOlive, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorBlue, tcell.ColorLime, tcell.ColorAqua,
	tcell.ColorRed, tcell.ColorFuchsia, tcell.ColorYellow, tcell.ColorWhite,
}

// ColorCode packs a foreground and background color into a single cell
// attribute, mirroring the VGA color-code byte.
type ColorCode struct {
	FG Color
	BG Color
}

// NewColorCode builds a ColorCode from a foreground and background.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode{FG: fg, BG: bg}
}

// style renders a ColorCode as the tcell.Style the cell should carry.
func (c ColorCode) style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellPalette[int(c.FG)&0xf]).
		Background(tcellPalette[int(c.BG)&0xf])
}
