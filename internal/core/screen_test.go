package core

import "testing"

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(-1, 0, 'x')
	s.Set(4, 1, 'x')
	s.DrawText(2, 1, "abcd")

	if want := "    \n  ab"; s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}
	if s.Get(9, 9) != ' ' || s.GetCell(-1, 0) != (Cell{Rune: ' '}) {
		t.Error("out-of-range reads should return a blank cell")
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "wxyz")
	s.DrawText(0, 1, "1234")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if want := "wx\n12\n  "; s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}
}

func TestScreenBoxAndLine(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 3))
	s.DrawHLine(1, 3, 3, '=')

	want := "┌───┐\n│   │\n└───┘\n === "
	if s.String() != want {
		t.Errorf("String() =\n%s\nwant\n%s", s.String(), want)
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetCell(2, 1, '#', ColorRed)

	c := s.GetCell(2, 1)
	if c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 1) = %+v, expected red '#'", c)
	}

	s.FillRect(NewRect(0, 0, 2, 2), '█', ColorGreen)
	if s.GetCell(1, 1).Color != ColorGreen {
		t.Error("FillRect should color the filled area")
	}

	s.Clear()
	if s.GetCell(2, 1) != (Cell{Rune: ' '}) {
		t.Error("Clear should reset color as well as rune")
	}
}

func TestScreenBlit(t *testing.T) {
	top := NewScreen(4, 2)
	top.DrawTextColor(0, 0, "P1", ColorCyan)
	bottom := NewScreen(4, 2)
	bottom.DrawText(0, 1, "P2")

	s := NewScreen(4, 4)
	s.Blit(top, 0, 0)
	s.Blit(bottom, 0, 2)

	if want := "P1  \n    \n    \nP2  "; s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("Blit should keep cell colors")
	}
}

func TestScreenColorRuns(t *testing.T) {
	s := NewScreen(5, 1)
	s.SetCell(1, 0, 'a', ColorRed)
	s.SetCell(2, 0, 'b', ColorRed)
	s.SetCell(4, 0, 'c', ColorGray)

	type run struct {
		c    Color
		text string
	}
	var got []run
	s.ColorRuns(0, func(c Color, text string) {
		got = append(got, run{c, text})
	})

	want := []run{
		{ColorDefault, " "},
		{ColorRed, "ab"},
		{ColorDefault, " "},
		{ColorGray, "c"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d runs %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	called := false
	s.ColorRuns(3, func(Color, string) { called = true })
	if called {
		t.Error("out-of-range row should produce no runs")
	}
}
