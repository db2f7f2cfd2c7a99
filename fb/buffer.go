// Package fb is the framebuffer driver: an 80x25 character-cell display
// backed by a real terminal through tcell.Screen, which owns raw-mode
// terminal setup, cursor control and the SGR/cursor-motion escape writing
// that a hand-rolled ANSI renderer would otherwise have to reimplement.
package fb

import (
	"strconv"
	"sync"

	"github.com/gdamore/tcell"
)

// BufferWidth and BufferHeight are the fixed dimensions of the text-mode
// framebuffer: 80 columns by 25 rows, matching the VGA text mode this
// desktop pretends to run on.
const (
	BufferWidth  = 80
	BufferHeight = 25
)

// Cell is a single character cell: a glyph plus its color attribute.
type Cell struct {
	Char  rune
	Color ColorCode
}

// Buffer is a 2D grid of cells. It no longer backs the actual render path
// (tcell.Screen's Show does its own front/back diffing) but it is kept as
// a readback cache so Peek can see a cell plotted earlier in the same
// frame, before the next Show.
type Buffer struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewBuffer creates a blank buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Cells: make([]Cell, width*height)}
}

// Set writes a rune and color to a specific coordinate. Out-of-bounds
// writes are silently dropped, matching a hardware framebuffer's wraparound
// protection.
func (b *Buffer) Set(x, y int, ch rune, color ColorCode) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Cells[y*b.Width+x] = Cell{Char: ch, Color: color}
}

// Get returns the cell at the given coordinate.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Cell{}
	}
	return b.Cells[y*b.Width+x]
}

// Screen is the framebuffer driver: an 80x25 character grid rendered
// through a tcell.Screen over the controlling terminal.
type Screen struct {
	mu   sync.Mutex
	tui  tcell.Screen
	back *Buffer
}

// NewScreen opens the framebuffer over the controlling terminal via tcell,
// which puts the terminal into raw mode itself.
func NewScreen() *Screen {
	tui, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}
	if err := tui.Init(); err != nil {
		panic(err)
	}
	return newScreenWith(tui)
}

// NewSimulationScreen builds a Screen over a tcell.SimulationScreen instead
// of the controlling terminal, for tests that exercise Plot/Peek/Render
// without a real tty.
func NewSimulationScreen() *Screen {
	tui := tcell.NewSimulationScreen("")
	if err := tui.Init(); err != nil {
		panic(err)
	}
	tui.SetSize(BufferWidth, BufferHeight)
	return newScreenWith(tui)
}

// newScreenWith wraps an already-initialized tcell.Screen. Tests use this
// with a tcell.SimulationScreen to exercise Screen without a real terminal.
func newScreenWith(tui tcell.Screen) *Screen {
	tui.SetStyle(tcell.StyleDefault)
	tui.HideCursor()
	tui.Clear()

	return &Screen{
		tui:  tui,
		back: NewBuffer(BufferWidth, BufferHeight),
	}
}

// Tcell exposes the underlying tcell.Screen so the keyboard driver can
// poll events and post wakeups against the same terminal session.
func (s *Screen) Tcell() tcell.Screen { return s.tui }

// Close restores the terminal to cooked mode and shows the cursor again.
func (s *Screen) Close() {
	s.tui.Fini()
}

// Plot writes a single character and color to the framebuffer, as a VGA
// framebuffer's plot primitive would.
func (s *Screen) Plot(ch rune, x, y int, color ColorCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.Set(x, y, ch, color)
	s.tui.SetCell(x, y, color.style(), ch)
}

// Peek reads a cell back out of the framebuffer.
func (s *Screen) Peek(x, y int) (rune, ColorCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.back.Get(x, y)
	return c.Char, c.Color
}

// PlotStr writes a string starting at (x, y), left to right with no wrap.
func (s *Screen) PlotStr(str string, x, y int, color ColorCode) {
	col := x
	for _, r := range str {
		s.Plot(r, col, y, color)
		col++
	}
}

// PlotNum writes the decimal representation of n left-justified at (x, y).
func (s *Screen) PlotNum(n int, x, y int, color ColorCode) {
	s.PlotStr(strconv.Itoa(n), x, y, color)
}

// PlotNumRightJustified writes the decimal representation of n
// right-justified in a field of the given width, ending at column x+width-1.
func (s *Screen) PlotNumRightJustified(n int, width int, x, y int, color ColorCode) {
	str := strconv.Itoa(n)
	if len(str) < width {
		str = pad(str, width)
	}
	s.PlotStr(str, x, y, color)
}

func pad(s string, width int) string {
	out := make([]byte, 0, width)
	for i := 0; i < width-len(s); i++ {
		out = append(out, ' ')
	}
	out = append(out, s...)
	return string(out)
}

// IsDrawable reports whether ch is a printable glyph of the character set,
// i.e. anything but the NUL sentinel and other control characters.
func IsDrawable(ch rune) bool {
	return ch >= 0x20 && ch < 0x7f
}

// Clear blanks the framebuffer.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := 0; y < s.back.Height; y++ {
		for x := 0; x < s.back.Width; x++ {
			s.back.Set(x, y, ' ', ColorCode{})
		}
	}
	s.tui.Clear()
}

// Render flushes the frame to the terminal. tcell.Screen.Show diffs against
// what it last drew and only repaints changed cells.
func (s *Screen) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tui.Show()
}
