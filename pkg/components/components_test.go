package components

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestVisibleLenIgnoresEscapes(t *testing.T) {
	if got := VisibleLen("\x1b[31mred\x1b[0m"); got != 3 {
		t.Errorf("VisibleLen = %d, want 3", got)
	}
	if got := VisibleLen("●x"); got != 2 {
		t.Errorf("VisibleLen(●x) = %d, want 2", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 3, "hel"},
		{"hi", 5, "hi"},
		{"hello", 0, ""},
		{"hello", -1, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight should not truncate, got %q", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q, want odd space on the right", got)
	}
}

func TestHyperlink(t *testing.T) {
	if got := Hyperlink("text", ""); got != "text" {
		t.Errorf("Hyperlink without url = %q", got)
	}
	got := Hyperlink("text", "https://example.com")
	if !strings.Contains(got, "\x1b]8;;https://example.com") || VisibleLen(got) != 4 {
		t.Errorf("Hyperlink = %q", got)
	}
}

func TestBlock(t *testing.T) {
	lines := Block("abcdef\nx", 3, 3)
	want := []string{"abc", "x  ", "   "}
	if len(lines) != len(want) {
		t.Fatalf("Block returned %d lines", len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if Block("x", 0, 2) != nil {
		t.Error("Block with zero width should be nil")
	}
}

func TestPlace(t *testing.T) {
	got := Place([]string{"ab", "cd"}, 4, 3, 1, 1)
	want := "    \n ab \n cd "
	if got != want {
		t.Errorf("Place = %q, want %q", got, want)
	}

	clipped := Place([]string{"abcd", "skip"}, 3, 1, -1, 0)
	if clipped != "bcd" {
		t.Errorf("Place clipped = %q, want %q", clipped, "bcd")
	}
}

func TestBars(t *testing.T) {
	got := Bars([]float64{1, 0.5, 1.0 / 16, 0, 2}, 2, 1)
	want := []string{
		"█       █",
		"█ █ ▁   █",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	if Bars([]float64{1}, 0, 0) != nil {
		t.Error("Bars with no rows should be nil")
	}
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(4, 3)
	if w, h := c.Size(); w != 4 || h != 4 {
		t.Errorf("Size() = %d,%d, want 4,4", w, h)
	}
	c.Set(9, 9, "#000000")
	if c.At(9, 9) != "" {
		t.Error("out-of-range pixel stored")
	}
}

func TestCanvasRenderAscii(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, "#000000")
	c.Set(0, 1, "#000000")
	c.Set(1, 0, "#000000")
	c.Set(2, 1, "#fefefe")
	got := c.Render(termenv.Ascii, "#ffffff")
	if got != "█▀ " {
		t.Errorf("Render(Ascii) = %q, want %q", got, "█▀ ")
	}
}

func TestCanvasRenderColor(t *testing.T) {
	c := NewCanvas(5, 4)
	c.Fill("#10b981", func(x, y float64) bool { return x < 2.5 })
	out := c.Render(termenv.TrueColor, "#ffffff")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		if VisibleLen(l) != 5 {
			t.Errorf("line %d is %d cells, want 5", i, VisibleLen(l))
		}
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("TrueColor render carries no color")
	}
}

func TestBlend(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("Blend(t=0) = %s", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("Blend(t=1) = %s", got)
	}
	mid := Blend("#000000", "#ffffff", 0.5)
	if mid == "#000000" || mid == "#ffffff" {
		t.Errorf("Blend(t=0.5) = %s, want a gray", mid)
	}
	if got := Blend("nope", "#ffffff", 0.5); got != "nope" {
		t.Errorf("Blend with bad input = %s", got)
	}
}
