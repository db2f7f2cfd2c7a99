package editor

import (
	"strings"
	"testing"
)

func TestPushCharAdvancesCursor(t *testing.T) {
	e := New()
	e.PushChar('h')
	e.PushChar('i')
	if e.CursorCol() != 2 || e.CursorRow() != 0 {
		t.Fatalf("expected cursor at (2,0), got (%d,%d)", e.CursorCol(), e.CursorRow())
	}
	if e.document[0][0] != 'h' || e.document[0][1] != 'i' {
		t.Fatalf("expected \"hi\" written to row 0")
	}
}

func TestPushBackspaceRoundTrip(t *testing.T) {
	e := New()
	e.PushChar('a')
	e.PushChar('b')
	row, col := e.cursorRow, e.cursorCol
	e.PushChar('c')
	e.BackspaceChar()
	if e.cursorRow != row || e.cursorCol != col {
		t.Fatalf("expected cursor restored to (%d,%d), got (%d,%d)", row, col, e.cursorRow, e.cursorCol)
	}
	if e.document[0][2] != 0 {
		t.Fatalf("expected inserted char erased")
	}
}

func TestNulSentinelPartitionsRow(t *testing.T) {
	e := New()
	for _, c := range "hello" {
		e.PushChar(byte(c))
	}
	e.BackspaceChar()
	e.BackspaceChar()
	seenNul := false
	for col := 0; col < LineWidth; col++ {
		if e.document[0][col] == 0 {
			seenNul = true
		} else if seenNul {
			t.Fatalf("non-NUL cell after NUL at col %d", col)
		}
	}
}

func TestTargetColPreservedAcrossVerticalMotion(t *testing.T) {
	e := New()
	for _, c := range "abcdef" {
		e.PushChar(byte(c))
	}
	e.Newline()
	for _, c := range "xy" {
		e.PushChar(byte(c))
	}
	e.targetCol = 6
	e.MoveCursorUp()
	if e.targetCol != 6 {
		t.Fatalf("MoveCursorUp must not change targetCol, got %d", e.targetCol)
	}
	e.MoveCursorDown()
	if e.targetCol != 6 {
		t.Fatalf("MoveCursorDown must not change targetCol, got %d", e.targetCol)
	}
}

func TestMoveCursorRightFromEndOfRowEntersNextRowColZero(t *testing.T) {
	e := New()
	for _, c := range "ab" {
		e.PushChar(byte(c))
	}
	e.cursorCol = 2 // logical end of row 0
	e.MoveCursorRight()
	if e.cursorRow != 1 || e.cursorCol != 0 {
		t.Fatalf("expected (1,0), got (%d,%d)", e.cursorRow, e.cursorCol)
	}
}

func TestContentsReproducesLoadedLines(t *testing.T) {
	src := "hello\nworld"
	e := NewFromContents(src, true)
	got := e.Contents()
	// Contents emits one line per grid row, so the loaded lines are
	// followed by the blank rows of the rest of the document.
	if !strings.HasPrefix(got, "hello\nworld\n") {
		t.Fatalf("expected lines hello and world, got %q", got[:12])
	}
}
