package keyboard

import (
	"testing"

	"github.com/gdamore/tcell"
)

func TestTranslateEnterBackspaceAndRune(t *testing.T) {
	ev, ok := translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !ok || ev.IsRaw() || ev.Rune() != '\n' {
		t.Fatalf("expected Enter to decode to Unicode('\\n'), got %+v ok=%v", ev, ok)
	}

	ev, ok = translate(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if !ok || ev.IsRaw() || ev.Rune() != 0x08 {
		t.Fatalf("expected Backspace2 to decode to Unicode(0x08), got %+v ok=%v", ev, ok)
	}

	ev, ok = translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !ok || ev.IsRaw() || ev.Rune() != 'q' {
		t.Fatalf("expected rune key to decode to Unicode('q'), got %+v ok=%v", ev, ok)
	}
}

func TestTranslateArrowsAndFunctionKeys(t *testing.T) {
	ev, ok := translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if !ok || !ev.IsRaw() || ev.Code() != KeyArrowUp {
		t.Fatalf("expected Up to decode to RawKey(KeyArrowUp), got %+v ok=%v", ev, ok)
	}

	ev, ok = translate(tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModNone))
	if !ok || !ev.IsRaw() || ev.Code() != KeyF6 {
		t.Fatalf("expected F6 to decode to RawKey(KeyF6), got %+v ok=%v", ev, ok)
	}
}

func TestTranslateCtrlLettersPassThroughAsControlBytes(t *testing.T) {
	ev, ok := translate(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if !ok || ev.IsRaw() || ev.Rune() != 0x13 {
		t.Fatalf("expected Ctrl-S to decode to Unicode(0x13), got %+v ok=%v", ev, ok)
	}

	ev, ok = translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !ok || ev.IsRaw() || ev.Rune() != 0x03 {
		t.Fatalf("expected Ctrl-C to decode to Unicode(0x03), got %+v ok=%v", ev, ok)
	}
}

func TestTranslateUnmappedKeyIsDropped(t *testing.T) {
	if _, ok := translate(tcell.NewEventKey(tcell.KeyCtrlBackslash, 0, tcell.ModNone)); ok {
		t.Fatalf("expected an unmapped control key to be dropped")
	}
}
