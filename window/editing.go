package window

import "deskos/keyboard"

// HandleEditingKey routes a keystroke to the editor while in Editing mode.
func (w *Window) HandleEditingKey(ev keyboard.Event) {
	e := w.Editor
	if e == nil {
		return
	}
	if ev.IsRaw() {
		switch ev.Code() {
		case keyboard.KeyArrowUp:
			e.MoveCursorUp()
		case keyboard.KeyArrowDown:
			e.MoveCursorDown()
		case keyboard.KeyArrowLeft:
			e.MoveCursorLeft()
		case keyboard.KeyArrowRight:
			e.MoveCursorRight()
		}
		return
	}

	switch r := ev.Rune(); {
	case r == '\n':
		e.Newline()
	case r == 0x08:
		e.BackspaceChar()
	case r == 0x7f:
		e.DeleteChar()
	default:
		if r >= 0x20 && r < 0x7f {
			e.PushChar(byte(r))
		}
	}
}
