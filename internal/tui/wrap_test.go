package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrapWordsBreaksOnSpaces(t *testing.T) {
	lines := wrapWords("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, lines)
	}
}

func TestWrapWordsSplitsLongWords(t *testing.T) {
	lines := wrapWords("abcdefghij", 4)
	want := []string{"abcd", "efgh", "ij"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, lines)
	}
}

func TestWrapWordsEmpty(t *testing.T) {
	lines := wrapWords("", 10)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected a single empty line, got %v", lines)
	}
}

func TestWrapWordsNoWidthJoins(t *testing.T) {
	lines := wrapWords("a\nb  c", 0)
	if len(lines) != 1 || lines[0] != "a b c" {
		t.Fatalf("expected joined line, got %v", lines)
	}
}

func TestFitLinesPadsAndClips(t *testing.T) {
	out := fitLines("short\nthis line is too long\nx\ny", 8, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 8 {
			t.Fatalf("line %d has width %d: %q", i, w, line)
		}
	}
	if lines[1] != "this ..." {
		t.Fatalf("expected truncated line, got %q", lines[1])
	}
}

func TestTruncateLineKeepsShortLines(t *testing.T) {
	if got := truncateLine("abc", 5); got != "abc" {
		t.Fatalf("expected unchanged line, got %q", got)
	}
	if got := truncateLine("abcdef", 3); got != "abc" {
		t.Fatalf("expected hard cut, got %q", got)
	}
}
