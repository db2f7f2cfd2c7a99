package keyboard

// KeyCode identifies a non-text key delivered as a RawKey event.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEsc
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Event mirrors a DecodedKey from the keyboard driver contract: it is
// either a RawKey carrying a KeyCode, or a Unicode carrying a character
// (including '\n', backspace 0x08 and delete 0x7f).
type Event struct {
	raw  bool
	code KeyCode
	ch   rune
}

// RawKey builds a non-text key event.
func RawKey(c KeyCode) Event { return Event{raw: true, code: c} }

// Unicode builds a text key event.
func Unicode(ch rune) Event { return Event{raw: false, ch: ch} }

// IsRaw reports whether the event carries a KeyCode rather than a rune.
func (e Event) IsRaw() bool { return e.raw }

// Code returns the KeyCode of a raw event, zero value if the event is Unicode.
func (e Event) Code() KeyCode { return e.code }

// Rune returns the character of a Unicode event, zero value if the event is raw.
func (e Event) Rune() rune { return e.ch }
