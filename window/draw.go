package window

import (
	"strconv"

	"deskos/fb"
	"deskos/vfs"
)

var borderColor = fb.NewColorCode(fb.White, fb.Black)

// Draw renders the window's border and, depending on Mode, its contents:
// the file listing, the editor viewport, or the interpreter's scrolled
// output (already plotted incrementally by the output sink, so Running
// mode only needs the border redrawn here).
func (w *Window) Draw(fs *vfs.FS) {
	w.drawBorder()
	switch w.Mode {
	case Listing:
		w.drawListing(fs)
	case Editing:
		if w.Editor != nil {
			w.Editor.DrawWindow(w.screen, w.WindowX+1, w.WindowY+1)
		}
	case Running:
		// content is maintained incrementally by Print/scrollUp
	}
}

func (w *Window) drawBorder() {
	tl, tr, bl, br, h, v := '┌', '┐', '└', '┘', '─', '│'
	if w.Focused {
		tl, tr, bl, br, h, v = '╔', '╗', '╚', '╝', '═', '║'
	}

	w.screen.Plot(tl, w.WindowX, w.WindowY, borderColor)
	w.screen.Plot(tr, w.WindowX+WinWidth-1, w.WindowY, borderColor)
	w.screen.Plot(bl, w.WindowX, w.WindowY+WinHeight-1, borderColor)
	w.screen.Plot(br, w.WindowX+WinWidth-1, w.WindowY+WinHeight-1, borderColor)

	for x := 1; x < WinWidth-1; x++ {
		w.screen.Plot(h, w.WindowX+x, w.WindowY, borderColor)
		w.screen.Plot(h, w.WindowX+x, w.WindowY+WinHeight-1, borderColor)
	}
	for y := 1; y < WinHeight-1; y++ {
		w.screen.Plot(v, w.WindowX, w.WindowY+y, borderColor)
		w.screen.Plot(v, w.WindowX+WinWidth-1, w.WindowY+y, borderColor)
	}
}

// drawListing renders the filesystem's file list in rows of 3 columns,
// inverting the focused entry, per spec §4.5.
func (w *Window) drawListing(fs *vfs.FS) {
	count, names := fs.ListDirectory()
	normal := fb.NewColorCode(fb.LightCyan, fb.Black)
	inverted := fb.NewColorCode(fb.Black, fb.LightCyan)

	for i := 0; i < count; i++ {
		color := normal
		if i == w.FocusedFile {
			color = inverted
		}
		x := w.WindowX + 1 + (i%3)*10
		y := w.WindowY + 1 + i/3
		w.screen.PlotStr(names[i].String(), x, y, color)
	}
}

// StatusText returns the header-line status string for this window, per
// the chrome layout in spec §6.
func (w *Window) StatusText() string {
	switch w.Mode {
	case Editing:
		return "Editing " + w.CurrentFile
	case Running:
		if w.TakingInput {
			return "Awaiting Input    "
		}
		return "Running " + w.CurrentFile
	default:
		return ""
	}
}

// DrawTaskManagerEntry plots this window's function-key label and
// right-justified vruntime into the task-manager column, per spec §6.
func (w *Window) DrawTaskManagerEntry(index int, regionX int) {
	color := fb.NewColorCode(fb.White, fb.Black)
	w.screen.PlotStr("F"+strconv.Itoa(index+1), regionX, 2*index, color)
	w.screen.PlotNumRightJustified(int(w.Vruntime), 9, regionX, 2*index+1, color)
}
