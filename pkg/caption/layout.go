package caption

import (
	"strings"

	"golang.org/x/image/font"
)

// WrapText greedily wraps text into lines whose rendered width stays within
// maxWidth pixels. Words are never split: a single word wider than maxWidth
// becomes its own overflowing line. Empty or whitespace-only input yields
// exactly one single-space line, so the chip renderer always has a line to
// size against.
func WrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{" "}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if MeasureWidth(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// MeasureWidth returns the rendered advance width of s in pixels.
func MeasureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the face's line height in pixels. Every line of a chip
// shares this height regardless of actual glyph extents.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}
