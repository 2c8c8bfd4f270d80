package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColor(3, 2, '#', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v, expected '#' in red", cell)
	}

	// Out of bounds writes are ignored, reads return blank
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'A')
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Errorf("Get(1, 1) after Clear = %q, expected space", s.Get(1, 1))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "chain", ColorYellow)

	if got := s.Row(0); got != "     cha" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if s.GetCell(5, 0).Color != ColorYellow {
		t.Error("DrawText should apply color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := strings.Join([]string{
		"┌──┐",
		"│  │",
		"└──┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'Z')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should discard content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 2)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row out of range = %q, expected blank", got)
	}
}
