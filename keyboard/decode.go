package keyboard

import "github.com/gdamore/tcell"

// pollScreen is the surface keyboard needs from the shared terminal
// session: poll blocks for the next event, PostEvent lets another
// goroutine wake a blocked poll (used to unwind the input loop on exit).
type pollScreen interface {
	PollEvent() tcell.Event
	PostEvent(tcell.Event) error
}

// StartInput starts the input loop against the same tcell session the
// framebuffer draws to, and returns a channel of decoded events. Closing
// done wakes any blocked PollEvent via a posted interrupt and stops the
// loop.
func StartInput(tui pollScreen, done <-chan struct{}) <-chan Event {
	ch := make(chan Event)
	go inputLoop(tui, ch, done)
	go func() {
		<-done
		tui.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	return ch
}

func inputLoop(tui pollScreen, ch chan<- Event, done <-chan struct{}) {
	defer close(ch)
	for {
		ev := tui.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			decoded, ok := translate(e)
			if !ok {
				continue
			}
			select {
			case ch <- decoded:
			case <-done:
				return
			}
		case *tcell.EventInterrupt:
			select {
			case <-done:
				return
			default:
			}
		}
	}
}

// rawKeys maps the tcell key codes this desktop cares about onto the
// keyboard driver's own KeyCode tagged union.
var rawKeys = map[tcell.Key]KeyCode{
	tcell.KeyEscape: KeyEsc,
	tcell.KeyUp:     KeyArrowUp,
	tcell.KeyDown:   KeyArrowDown,
	tcell.KeyLeft:   KeyArrowLeft,
	tcell.KeyRight:  KeyArrowRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPgUp,
	tcell.KeyPgDn:   KeyPgDown,
	tcell.KeyInsert: KeyInsert,
	tcell.KeyF1:     KeyF1,
	tcell.KeyF2:     KeyF2,
	tcell.KeyF3:     KeyF3,
	tcell.KeyF4:     KeyF4,
	tcell.KeyF5:     KeyF5,
	tcell.KeyF6:     KeyF6,
	tcell.KeyF7:     KeyF7,
	tcell.KeyF8:     KeyF8,
	tcell.KeyF9:     KeyF9,
	tcell.KeyF10:    KeyF10,
	tcell.KeyF11:    KeyF11,
	tcell.KeyF12:    KeyF12,
}

// translate turns one tcell key event into the keyboard driver's own
// Event, matching the external contract: Enter, Tab, Backspace and Delete
// are text, everything else non-printable is either a RawKey or dropped.
func translate(ev *tcell.EventKey) (Event, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Unicode('\n'), true
	case tcell.KeyTab:
		return Unicode('\t'), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Unicode(0x08), true
	case tcell.KeyDelete:
		return Unicode(0x7f), true
	case tcell.KeyRune:
		return Unicode(ev.Rune()), true
	}
	if code, ok := rawKeys[ev.Key()]; ok {
		return RawKey(code), true
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		// Ctrl-A..Ctrl-Z carry the classic control-code value (Ctrl-C is
		// 0x03, Ctrl-S is 0x13, ...); pass it through as text the same way
		// Enter/Tab/Backspace do, for gestures like save (Ctrl-S) and quit
		// (Ctrl-C) that key on that byte.
		return Unicode(rune(ev.Key())), true
	}
	return Event{}, false
}
