package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

type wordRange struct {
	start int
	end   int
}

// findWords returns the rune ranges of space separated words.
func findWords(runes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range runes {
		if r == ' ' || r == '\n' || r == '\t' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(runes)})
	}
	return words
}

// wrapWords breaks text into lines no wider than width. Words longer than
// width are split across lines.
func wrapWords(text string, width int) []string {
	runes := []rune(text)
	words := findWords(runes)
	if width <= 0 {
		parts := make([]string, 0, len(words))
		for _, w := range words {
			parts = append(parts, string(runes[w.start:w.end]))
		}
		return []string{strings.Join(parts, " ")}
	}
	lines := []string{}
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}
	for _, w := range words {
		word := string(runes[w.start:w.end])
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			flush()
		}
		for wordWidth > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				break
			}
			if lineWidth > 0 {
				flush()
			}
			line.WriteString(head)
			flush()
			word = strings.TrimPrefix(word, head)
			wordWidth = runewidth.StringWidth(word)
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	if lineWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

// fitLines pads and clips s to exactly width x height cells.
func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(truncateLine(line, width), width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// truncateLine shortens a possibly styled line to width cells.
func truncateLine(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "...")
}
