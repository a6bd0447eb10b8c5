package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColorAndBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(3, 4, 'X', ColorRed)
	if c := s.GetCell(3, 4); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red X", c)
	}

	// Out of bounds writes are dropped, reads give a blank cell
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 10, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(10, 10) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRectColor(NewRect(0, 0, 4, 4), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("after Clear cell (%d, %d) = %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorCyan)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("cell %d = %+v, expected cyan %q", i, c, ch)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Row(0)[18:] != "He" {
		t.Errorf("clipped row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "•ab")

	// three runes in twenty cells start at column 8
	if s.Get(8, 1) != '•' || s.Get(10, 1) != 'b' {
		t.Errorf("row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
		{3, 1, '─'}, {3, 4, '─'}, {1, 2, '│'}, {5, 3, '│'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("(%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-')
	s.DrawVLine(8, 3, 4, '|')

	if s.Row(2) != "  -----   " {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
	for y := 3; y < 7; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("vline missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorYellow {
		t.Errorf("content lost after enlarging: %q", s.Row(0))
	}
	if len(s.Row(-1)) != 15 {
		t.Error("out of range row should be padded to width")
	}
}
