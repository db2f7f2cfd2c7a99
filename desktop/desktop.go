// Package desktop is the top-level owner: four windows in a fixed 2x2
// grid, the filesystem handle, the focused-window index, the scheduler,
// and the new-file-entry UI state. It routes keyboard events and drives
// the scheduler on each tick, per spec §3/§4.4/§4.5/§6.
package desktop

import (
	"deskos/fb"
	"deskos/interp"
	"deskos/keyboard"
	"deskos/sched"
	"deskos/vfs"
	"deskos/window"
)

// WinRegionWidth is the column at which the task-manager panel begins;
// two window columns of window.WinWidth each fill exactly this width.
const WinRegionWidth = window.WinWidth * 2

// Desktop owns the whole running system for one process lifetime.
type Desktop struct {
	screen  *fb.Screen
	fs      *vfs.FS
	windows [4]*window.Window
	sched   *sched.Scheduler

	focusedEditor int

	creatingFile  bool
	filenameInput string
}

// New constructs a desktop with its four windows at compile-time
// positions, seeds the filesystem with the preinstalled programs, and
// focuses window 0.
func New(screen *fb.Screen) *Desktop {
	fs := vfs.New()
	for _, name := range interp.PreinstalledOrder {
		// Startup seeding errors are impossible at this size (a handful
		// of small files against a fresh, empty filesystem) and are not
		// actionable to the user before a window even exists, so they
		// are silently ignored, per spec §7.
		_ = fs.WriteFile(name, []byte(interp.Preinstalled[name]))
	}

	d := &Desktop{
		screen: screen,
		fs:     fs,
		sched:  sched.New(),
	}
	positions := [4][2]int{
		{0, 1},
		{window.WinWidth, 1},
		{0, 1 + window.WinHeight},
		{window.WinWidth, 1 + window.WinHeight},
	}
	for i, p := range positions {
		d.windows[i] = window.New(screen, p[0], p[1])
	}
	d.windows[0].SetFocus(true)
	return d
}

func (d *Desktop) focused() *window.Window { return d.windows[d.focusedEditor] }

func (d *Desktop) numFiles() int {
	n, _ := d.fs.ListDirectory()
	return n
}

// Tick drives the scheduler once and lets it run at most one program's
// interpreter for this tick, per spec §4.3.
func (d *Desktop) Tick() {
	windows := d.windows[:]
	d.sched.Tick(windows)
}

// Key routes one keyboard event per spec §4.4.
func (d *Desktop) Key(ev keyboard.Event) {
	if d.creatingFile {
		d.handleFilenameEntry(ev)
		return
	}

	if ev.IsRaw() {
		switch ev.Code() {
		case keyboard.KeyF1, keyboard.KeyF2, keyboard.KeyF3, keyboard.KeyF4:
			d.switchFocus(funcKeyIndex(ev.Code()))
			return
		case keyboard.KeyF5:
			if d.focused().Mode == window.Listing {
				d.beginFilenameEntry()
			}
			return
		case keyboard.KeyF6:
			if d.focused().Mode == window.Running {
				d.focused().Terminate()
			}
			return
		case keyboard.KeyArrowLeft:
			if d.focused().Mode == window.Listing {
				d.focused().PrevFile(d.numFiles())
				return
			}
		case keyboard.KeyArrowRight:
			if d.focused().Mode == window.Listing {
				d.focused().NextFile(d.numFiles())
				return
			}
		}
	}

	w := d.focused()
	switch w.Mode {
	case window.Listing:
		d.handleListingKey(ev)
	case window.Editing:
		w.HandleEditingKey(ev)
		if !ev.IsRaw() && isSaveGesture(ev) {
			w.SaveAndReturnToListing(d.fs)
		}
	case window.Running:
		w.HandleRunningKey(ev)
		if w.ConsumeInputSubmission() {
			sched.RepairFairness(w, d.windows[:])
		}
	}
}

// isSaveGesture recognizes Ctrl-S (0x13) as the editor's save-and-return
// gesture referenced by spec §4.2.
func isSaveGesture(ev keyboard.Event) bool { return ev.Rune() == 0x13 }

func funcKeyIndex(c keyboard.KeyCode) int {
	switch c {
	case keyboard.KeyF1:
		return 0
	case keyboard.KeyF2:
		return 1
	case keyboard.KeyF3:
		return 2
	default:
		return 3
	}
}

func (d *Desktop) switchFocus(i int) {
	if i == d.focusedEditor {
		return
	}
	d.focused().SetFocus(false)
	d.focusedEditor = i
	d.focused().SetFocus(true)
}

func (d *Desktop) handleListingKey(ev keyboard.Event) {
	if ev.IsRaw() {
		return
	}
	w := d.focused()
	switch ev.Rune() {
	case 'e':
		name := d.focusedFileName()
		if name != "" {
			w.EnterEditing(d.fs, name)
		}
	case 'r':
		name := d.focusedFileName()
		if name != "" {
			w.EnterRunning(d.fs, name)
		}
	}
}

func (d *Desktop) focusedFileName() string {
	count, names := d.fs.ListDirectory()
	w := d.focused()
	if count == 0 || w.FocusedFile >= count {
		return ""
	}
	return names[w.FocusedFile].String()
}

func (d *Desktop) beginFilenameEntry() {
	d.creatingFile = true
	d.filenameInput = ""
}

func (d *Desktop) handleFilenameEntry(ev keyboard.Event) {
	if ev.IsRaw() {
		if ev.Code() == keyboard.KeyEsc {
			d.creatingFile = false
			d.filenameInput = ""
		}
		return
	}
	switch r := ev.Rune(); {
	case r == '\n':
		if d.filenameInput != "" {
			if fd, err := d.fs.OpenCreate(d.filenameInput); err == nil {
				d.fs.Close(fd)
			}
			d.focused().ClampFocusedFile(d.numFiles())
		}
		d.creatingFile = false
		d.filenameInput = ""
	case r == 0x08:
		if len(d.filenameInput) > 0 {
			d.filenameInput = d.filenameInput[:len(d.filenameInput)-1]
		}
	case r >= 0x20 && r < 0x7f:
		if len(d.filenameInput) < vfs.MaxFilenameLen {
			d.filenameInput += string(r)
		}
	}
}
