package desktop

import "deskos/fb"

var headerColor = fb.NewColorCode(fb.White, fb.Black)

// Draw renders the full frame: header line, each window's border and
// contents, and the task-manager panel, per spec §6.
func (d *Desktop) Draw() {
	d.drawHeader()
	for _, w := range d.windows {
		w.Draw(d.fs)
	}
	d.drawTaskManager()
}

func (d *Desktop) drawHeader() {
	for x := 0; x < WinRegionWidth; x++ {
		d.screen.Plot(' ', x, 0, headerColor)
	}
	d.screen.PlotStr(d.headerText(), 0, 0, headerColor)
}

func (d *Desktop) headerText() string {
	if d.creatingFile {
		return "F5 - Filename: " + d.filenameInput
	}
	return d.focused().StatusText()
}

func (d *Desktop) drawTaskManager() {
	for i, w := range d.windows {
		w.DrawTaskManagerEntry(i, WinRegionWidth)
	}
}
