package render

import (
	"strings"
	"testing"
)

func TestWrapText_FitsWidth(t *testing.T) {
	cv := NewCanvas()
	text := "the quick brown fox jumps over the lazy dog again and again until the line is full"
	lines := cv.WrapText(text, "", 10, 200)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for _, line := range lines {
		if w := cv.StringWidth(line, "", 10); w > 200 {
			t.Errorf("line %q is %.1f pt wide, budget 200", line, w)
		}
	}
	if strings.Join(lines, " ") != text {
		t.Errorf("wrap lost or reordered words: %q", strings.Join(lines, " "))
	}
}

func TestWrapText_Idempotent(t *testing.T) {
	cv := NewCanvas()
	text := "we lose leads because no one answers the phone after hours and follow-up is slow"
	lines := cv.WrapText(text, "", 10, 180)
	for _, line := range lines {
		rewrapped := cv.WrapText(line, "", 10, 180)
		if len(rewrapped) != 1 || rewrapped[0] != line {
			t.Errorf("re-wrapping %q changed it: %v", line, rewrapped)
		}
	}
}

func TestWrapText_LongWordOwnLine(t *testing.T) {
	cv := NewCanvas()
	long := strings.Repeat("x", 120)
	lines := cv.WrapText("short "+long+" tail", "", 10, 100)
	found := false
	for _, line := range lines {
		if line == long {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the oversized word on its own line unsplit, got %v", lines)
	}
}

func TestWrapText_Empty(t *testing.T) {
	cv := NewCanvas()
	if lines := cv.WrapText("   ", "", 10, 100); lines != nil {
		t.Fatalf("expected no lines for blank text, got %v", lines)
	}
}

func TestCardHeight_MonotonicInTextLength(t *testing.T) {
	cv := NewCanvas()
	prev := 0.0
	word := "leads "
	for n := 1; n <= 60; n++ {
		c := quoteCard{text: strings.Repeat(word, n)}
		h := c.height(cv)
		if h < prev {
			t.Fatalf("card height decreased from %.1f to %.1f at %d words", prev, h, n)
		}
		prev = h
	}
}

func TestDrawBadge_WidthFromText(t *testing.T) {
	cv := NewCanvas()
	cv.AddPage()
	got := cv.DrawBadge(marginL, 700, "THE CHALLENGE", Red)
	want := cv.StringWidth("THE CHALLENGE", "B", 8) + 14
	if got != want {
		t.Fatalf("badge width = %.2f, want text width plus padding %.2f", got, want)
	}
}
