// Package window implements the per-window state machine: Listing,
// Editing and Running modes, the keyboard routing within a window, and
// the interpreter output sink that scrolls program output inside the
// window's viewport.
package window

import (
	"deskos/editor"
	"deskos/fb"
	"deskos/interp"
	"deskos/keyboard"
	"deskos/vfs"
)

// Mode is the window's tagged-union state.
type Mode int

const (
	Listing Mode = iota
	Editing
	Running
)

// Geometry constants for one window cell in the 2x2 desktop grid: a
// border on every side, 33 columns and 10 rows of interior.
const (
	WinWidth    = 35
	WinHeight   = 12
	InteriorW   = WinWidth - 2
	InteriorH   = 10
	MaxFilename = vfs.MaxFilenameLen
	InputCap    = 10
)

// Window owns one optional editor and one optional interpreter, the
// file it is showing, its output cursor, its focused-listing index and
// its scheduler-visible vruntime.
type Window struct {
	Mode Mode

	Editor *editor.Editor
	Interp *interp.Interp

	PrintLoc int // next output row within the window, 1..=10
	InputLoc int // row index of the row the input prompt is printed on while AwaitInput is live

	CurrentFile string

	WindowX, WindowY int
	Focused          bool
	FocusedFile      int

	Vruntime uint

	TakingInput bool
	InputBuffer string

	screen         *fb.Screen
	inputSubmitted bool
}

// New creates an empty, unfocused window at the given framebuffer origin.
func New(screen *fb.Screen, x, y int) *Window {
	return &Window{Mode: Listing, WindowX: x, WindowY: y, screen: screen, PrintLoc: 1}
}

// SetFocus toggles whether this window receives keyboard input.
func (w *Window) SetFocus(focused bool) {
	w.Focused = focused
	if w.Editor != nil {
		w.Editor.Focused = focused
	}
}

// Runnable reports whether this window's program should be scheduled:
// Running, an interpreter exists, and it is neither blocked nor done.
func (w *Window) Runnable() bool {
	return w.Mode == Running && w.Interp != nil && !w.Interp.BlockedOnInput() && !w.Interp.Completed()
}

// EnterEditing loads name's contents into a fresh editor and switches mode.
func (w *Window) EnterEditing(fs *vfs.FS, name string) error {
	contents, err := fs.ReadFile(name)
	if err != nil {
		w.printError(err)
		return err
	}
	w.Editor = editor.NewFromContents(string(contents), w.Focused)
	w.CurrentFile = name
	w.Mode = Editing
	return nil
}

// SaveAndReturnToListing writes the editor's contents back to disk and
// returns to Listing, per the save gesture in spec §4.2.
func (w *Window) SaveAndReturnToListing(fs *vfs.FS) error {
	if w.Editor == nil {
		return nil
	}
	err := fs.WriteFile(w.CurrentFile, []byte(w.Editor.Contents()))
	w.Editor = nil
	w.Mode = Listing
	if err != nil {
		w.printError(err)
	}
	return err
}

// EnterRunning reads name and constructs a fresh interpreter instance,
// resetting vruntime and the print cursor.
func (w *Window) EnterRunning(fs *vfs.FS, name string) error {
	contents, err := fs.ReadFile(name)
	if err != nil {
		w.printError(err)
		return err
	}
	w.Interp = interp.New(string(contents))
	w.CurrentFile = name
	w.Mode = Running
	w.Vruntime = 0
	w.PrintLoc = 1
	w.TakingInput = false
	w.InputBuffer = ""
	w.clearInterior()
	return nil
}

// Terminate implements F6: tear down the running interpreter and return
// to Listing with a cleared interior.
func (w *Window) Terminate() {
	w.Interp = nil
	w.Vruntime = 0
	w.PrintLoc = 1
	w.TakingInput = false
	w.InputBuffer = ""
	w.Mode = Listing
	w.clearInterior()
}

func (w *Window) clearInterior() {
	blank := fb.NewColorCode(fb.LightCyan, fb.Black)
	for y := 1; y <= InteriorH; y++ {
		for x := 0; x < InteriorW; x++ {
			w.screen.Plot(' ', w.WindowX+1+x, w.WindowY+y, blank)
		}
	}
}

func (w *Window) printError(err error) {
	w.Print([]byte(err.Error()))
}

// BeginAwaitInput is called once when a Tick returns interp.AwaitInput.
func (w *Window) BeginAwaitInput() {
	w.TakingInput = true
	w.InputBuffer = ""
	if w.PrintLoc == InteriorH {
		w.scrollUp()
		w.PrintLoc--
	}
	w.InputLoc = w.PrintLoc
	w.drawInputLine()
}

// HandleRunningKey routes a keystroke delivered while in Running mode:
// into InputBuffer when TakingInput, ignored otherwise (F6 is handled by
// the caller, the desktop's input router, since it changes window mode).
func (w *Window) HandleRunningKey(ev keyboard.Event) {
	if !w.TakingInput {
		return
	}
	if !ev.IsRaw() && ev.Rune() == '\n' {
		w.submitInput()
		return
	}
	if !ev.IsRaw() && ev.Rune() == 0x08 {
		if len(w.InputBuffer) > 0 {
			w.InputBuffer = w.InputBuffer[:len(w.InputBuffer)-1]
			w.drawInputLine()
		}
		return
	}
	if !ev.IsRaw() && fb.IsDrawable(ev.Rune()) && len(w.InputBuffer) < InputCap {
		w.InputBuffer += string(ev.Rune())
		w.drawInputLine()
	}
}

func (w *Window) submitInput() {
	if err := w.Interp.ProvideInput(w.InputBuffer); err != nil {
		w.Print([]byte(err.Error()))
	} else {
		w.inputSubmitted = true
	}
	w.PrintLoc++
	w.TakingInput = false
	w.InputBuffer = ""
}

// ConsumeInputSubmission reports whether this window just had a blocked
// program's input line successfully submitted (via HandleRunningKey), and
// clears the flag. The desktop uses this to know when to repair the
// scheduler's fairness accounting for this window.
func (w *Window) ConsumeInputSubmission() bool {
	v := w.inputSubmitted
	w.inputSubmitted = false
	return v
}

func (w *Window) drawInputLine() {
	color := fb.NewColorCode(fb.LightCyan, fb.Black)
	for x := 0; x < InteriorW; x++ {
		w.screen.Plot(' ', w.WindowX+1+x, w.WindowY+w.InputLoc, color)
	}
	w.screen.PlotStr(w.InputBuffer, w.WindowX+1, w.WindowY+w.InputLoc, color)
}
