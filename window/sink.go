package window

import "deskos/fb"

// Print implements interp.OutputSink: the window is the capability an
// interpreter prints through during a tick. A chunk longer than the
// interior width is split and the remainder recurses, each split
// producing its own line (and its own scroll, if needed).
func (w *Window) Print(line []byte) {
	if len(line) == 0 {
		return
	}
	if len(line) > InteriorW {
		w.printLine(line[:InteriorW])
		w.Print(line[InteriorW:])
		return
	}
	w.printLine(line)
}

func (w *Window) printLine(line []byte) {
	if w.PrintLoc == InteriorH {
		w.scrollUp()
		w.PrintLoc--
	}

	row := w.PrintLoc
	color := fb.NewColorCode(fb.LightCyan, fb.Black)
	for x := 0; x < InteriorW; x++ {
		ch := byte(' ')
		if x < len(line) {
			ch = line[x]
		}
		w.screen.Plot(rune(ch), w.WindowX+1+x, w.WindowY+row, color)
	}
	w.PrintLoc++
}

// scrollUp shifts every interior row up by one, peeking the row below and
// plotting it in place, then blanks the bottom row.
func (w *Window) scrollUp() {
	for row := 1; row < InteriorH; row++ {
		for x := 0; x < InteriorW; x++ {
			ch, color := w.screen.Peek(w.WindowX+1+x, w.WindowY+row+1)
			w.screen.Plot(ch, w.WindowX+1+x, w.WindowY+row, color)
		}
	}
	blank := fb.NewColorCode(fb.LightCyan, fb.Black)
	for x := 0; x < InteriorW; x++ {
		w.screen.Plot(' ', w.WindowX+1+x, w.WindowY+InteriorH, blank)
	}
}
