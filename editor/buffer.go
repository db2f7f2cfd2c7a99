// Package editor implements the text editor buffer: a fixed-capacity
// 2-D character grid with cursor and viewport semantics.
package editor

import "deskos/fb"

// LineWidth and DocumentLength are the compile-time grid dimensions.
// LineWidth equals a window's interior width (WinWidth-2 in package
// window) so the document never needs horizontal scrolling; see spec §9.
const (
	LineWidth      = 33
	DocumentLength = 40
)

// windowRows is the number of visible rows in a window's editor viewport.
const windowRows = DocumentLength / 4

// Editor is a fixed 2-D grid of characters with cursor and viewport state.
// The zero value is not useful; construct with New or NewFromContents.
type Editor struct {
	document [DocumentLength][LineWidth]byte

	cursorCol int
	cursorRow int
	targetCol int

	focusX int
	focusY int

	windowSizeX int
	windowSizeY int

	Focused bool
}

// New creates an empty, focused editor.
func New() *Editor {
	e := &Editor{
		windowSizeX: LineWidth,
		windowSizeY: windowRows,
		Focused:     true,
	}
	return e
}

// NewFromContents loads file_contents into the grid, splitting on '\n'
// and wrapping lines that exceed LineWidth, mirroring the source's
// byte-by-byte load.
func NewFromContents(contents string, focused bool) *Editor {
	e := &Editor{
		windowSizeX: LineWidth,
		windowSizeY: windowRows,
		Focused:     focused,
	}
	bytes := []byte(contents)
	row, col := 0, 0
	for i := 0; i < len(bytes) && row < DocumentLength; i++ {
		if bytes[i] == '\n' {
			row++
			col = 0
			continue
		}
		if col >= LineWidth {
			row++
			col = 0
			if row >= DocumentLength {
				break
			}
		}
		e.document[row][col] = bytes[i]
		col++
	}
	return e
}

// Contents renders the grid back into a newline-joined string, turning
// every NUL-terminated row into one line.
func (e *Editor) Contents() string {
	var out []byte
	for row := 0; row < DocumentLength; row++ {
		for col := 0; col < LineWidth; col++ {
			c := e.document[row][col]
			if c == 0 {
				break
			}
			out = append(out, c)
		}
		out = append(out, '\n')
	}
	return string(out)
}

func (e *Editor) lastRow() int { return e.windowSizeY*4 - 1 }

// logicalEnd returns the column of the first NUL in row, or the last
// column if the row is full.
func (e *Editor) logicalEnd(row int) int {
	for i := 0; i < e.windowSizeX; i++ {
		if e.document[row][i] == 0 {
			return i
		}
	}
	return e.windowSizeX - 1
}

// PushChar writes c at the cursor and advances it, clamping at the grid's
// edge rather than scrolling.
func (e *Editor) PushChar(c byte) {
	e.document[e.cursorRow][e.cursorCol] = c
	if e.cursorCol < e.windowSizeX-1 {
		e.cursorCol++
	} else if e.cursorRow < e.lastRow() {
		e.cursorRow++
		e.cursorCol = 0
	}
	e.targetCol = e.cursorCol
}

// BackspaceChar moves the cursor back one logical position and shifts the
// remainder of the row left to close the gap.
func (e *Editor) BackspaceChar() {
	if e.cursorCol != 0 || e.cursorRow != 0 {
		if e.cursorCol > 0 {
			e.cursorCol--
		} else if e.cursorRow > 0 {
			e.cursorRow--
			e.cursorCol = e.windowSizeX - 1
		}
		if e.document[e.cursorRow][e.cursorCol] == 0 {
			e.cursorCol = e.logicalEnd(e.cursorRow)
		}
		e.shift()
	}
	e.targetCol = e.cursorCol
}

// DeleteChar deletes the character under the cursor, or the whole line if
// the cursor sits at the start of an already-empty row.
func (e *Editor) DeleteChar() {
	if e.document[e.cursorRow][0] == 0 {
		e.DeleteLine()
	} else {
		e.shift()
	}
	e.targetCol = e.cursorCol
}

// shift closes a one-cell gap at the cursor by copying every following
// cell in the row left by one, NUL-filling the freed tail.
func (e *Editor) shift() {
	for i := e.cursorCol; i < e.windowSizeX; i++ {
		if e.document[e.cursorRow][i] == 0 {
			break
		}
		if i+1 == e.windowSizeX {
			e.document[e.cursorRow][i] = 0
		} else {
			e.document[e.cursorRow][i] = e.document[e.cursorRow][i+1]
		}
	}
}

// Newline advances to a blank row below the cursor. Rows below the new
// cursor row are not shifted down; see the open question in spec §9 — this
// preserves the source's behavior rather than "fixing" it.
func (e *Editor) Newline() {
	if e.cursorRow != e.lastRow() {
		e.cursorRow++
		e.cursorCol = 0
		e.document[e.cursorRow] = [LineWidth]byte{}
	}
}

// DeleteLine removes the cursor's row, shifting every row below it up by
// one and blanking the final row.
func (e *Editor) DeleteLine() {
	for i := e.cursorRow; i < e.lastRow(); i++ {
		e.document[i] = e.document[i+1]
	}
	e.document[e.lastRow()] = [LineWidth]byte{}
}

// MoveCursorUp moves the cursor up one row, restoring targetCol and
// clamping to the row's logical end.
func (e *Editor) MoveCursorUp() {
	if e.cursorRow > 0 {
		e.cursorRow--
		if e.targetCol != e.cursorCol {
			e.cursorCol = e.targetCol
		}
		if e.document[e.cursorRow][e.cursorCol] == 0 {
			e.cursorCol = e.logicalEnd(e.cursorRow)
		}
	}
}

// MoveCursorDown mirrors MoveCursorUp downward.
func (e *Editor) MoveCursorDown() {
	if e.cursorRow < e.lastRow() {
		e.cursorRow++
		if e.targetCol != e.cursorCol {
			e.cursorCol = e.targetCol
		}
		if e.document[e.cursorRow][e.cursorCol] == 0 {
			e.cursorCol = e.logicalEnd(e.cursorRow)
		}
	}
}

// MoveCursorLeft moves one cell back, wrapping to the logical end of the
// previous row.
func (e *Editor) MoveCursorLeft() {
	if e.cursorCol > 0 {
		e.cursorCol--
	} else if e.cursorRow > 0 {
		e.cursorCol = e.windowSizeX - 1
		e.cursorRow--
		if e.document[e.cursorRow][e.cursorCol] == 0 {
			e.cursorCol = e.logicalEnd(e.cursorRow)
		}
	}
	e.targetCol = e.cursorCol
}

// MoveCursorRight moves one cell forward. From the logical end of a
// non-last row it lands at column 0 of the next row regardless of that
// row's content — intentionally not honoring targetCol; see spec §9.
func (e *Editor) MoveCursorRight() {
	if e.cursorCol < e.windowSizeX-1 && e.document[e.cursorRow][e.cursorCol] != 0 {
		e.cursorCol++
	} else if e.cursorRow < e.lastRow() {
		e.cursorCol = 0
		e.cursorRow++
	}
	e.targetCol = e.cursorCol
}

// CursorRow and CursorCol expose the cursor position for callers that
// need to report editor state (e.g. the window's status line).
func (e *Editor) CursorRow() int { return e.cursorRow }
func (e *Editor) CursorCol() int { return e.cursorCol }

// DrawWindow follows the viewport to the cursor and plots the visible
// window onto the framebuffer at (windowX, windowY).
func (e *Editor) DrawWindow(screen *fb.Screen, windowX, windowY int) {
	if e.cursorRow < e.focusY && e.focusY != 0 {
		e.focusY = e.cursorRow
	} else if e.cursorRow >= e.focusY+e.windowSizeY && e.focusY+e.windowSizeY < e.lastRow()+1 {
		e.focusY = e.cursorRow - e.windowSizeY + 1
	}

	for y := 0; y < e.windowSizeY; y++ {
		for x := 0; x < e.windowSizeX; x++ {
			row := y + e.focusY
			ch := rune(e.document[row][x])
			isCursor := e.cursorCol == x && e.cursorRow == row && e.Focused

			var color fb.ColorCode
			if isCursor {
				color = fb.NewColorCode(fb.Black, fb.LightCyan)
			} else {
				color = fb.NewColorCode(fb.LightCyan, fb.Black)
			}

			if !fb.IsDrawable(ch) {
				ch = ' '
			}
			screen.Plot(ch, windowX+x, windowY+y, color)
		}
	}
}
