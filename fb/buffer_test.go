package fb

import "testing"

func TestBuffer(t *testing.T) {
	b := NewBuffer(10, 5)
	if len(b.Cells) != 50 {
		t.Errorf("expected 50 cells, got %d", len(b.Cells))
	}

	b.Set(0, 0, 'a', NewColorCode(Cyan, Black))
	cell := b.Get(0, 0)
	if cell.Char != 'a' || cell.Color.FG != Cyan {
		t.Errorf("set/get failed")
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(-1, 0, 'x', ColorCode{})
	b.Set(0, -1, 'x', ColorCode{})
	b.Set(4, 0, 'x', ColorCode{})
	if b.Get(10, 10) != (Cell{}) {
		t.Errorf("expected zero cell out of bounds")
	}
}

func TestIsDrawable(t *testing.T) {
	if !IsDrawable('A') {
		t.Errorf("'A' should be drawable")
	}
	if IsDrawable(0) {
		t.Errorf("NUL should not be drawable")
	}
	if IsDrawable(0x7f) {
		t.Errorf("DEL should not be drawable")
	}
}
