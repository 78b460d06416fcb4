package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %#x", c.Grid[0][0])
	}

	c.Set(3, 7)
	if c.Grid[1][1] != 0x2880 {
		t.Errorf("expected 0x2880, got %#x", c.Grid[1][1])
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("out-of-range set touched cell (%d,%d)", i, j)
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(4, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 4 {
			t.Errorf("expected 4 cells per line, got %d", len([]rune(line)))
		}
	}
}

func TestDrawColumn(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawColumn(2)

	for row := 0; row < c.Height; row++ {
		if c.Grid[row][1] == 0x2800 {
			t.Fatalf("column marker missing in row %d", row)
		}
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Clear()
	if c.Grid[0][0] != 0x2800 {
		t.Error("clear did not reset canvas")
	}
}
