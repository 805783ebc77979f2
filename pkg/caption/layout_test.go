package caption_test

import (
	"strings"
	"testing"

	"github.com/AndrewDonelson/caption-studio/pkg/caption"
)

func TestWrapTextRespectsMaxWidth(t *testing.T) {
	face := caption.ResolveFont("", 32)
	text := "the quick brown fox jumps over the lazy dog and keeps on running far away"
	maxWidth := 220

	lines := caption.WrapText(face, text, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}

	for _, line := range lines {
		w := caption.MeasureWidth(face, line)
		if w > maxWidth && strings.Contains(line, " ") {
			t.Fatalf("multi-word line %q measures %dpx, over limit %d", line, w, maxWidth)
		}
	}

	// Rejoining the lines must reproduce the words in order.
	joined := strings.Join(lines, " ")
	if joined != text {
		t.Fatalf("wrapped lines lost content:\n got %q\nwant %q", joined, text)
	}
}

func TestWrapTextOverwideWordBecomesOwnLine(t *testing.T) {
	face := caption.ResolveFont("", 32)
	wide := "pneumonoultramicroscopicsilicovolcanoconiosis"
	maxWidth := 40

	lines := caption.WrapText(face, "a "+wide+" b", maxWidth)
	found := false
	for _, line := range lines {
		if line == wide {
			found = true
		}
		if strings.Contains(line, wide) && line != wide {
			t.Fatalf("over-wide word was not isolated: %q", line)
		}
	}
	if !found {
		t.Fatalf("over-wide word missing from lines %v", lines)
	}
}

func TestWrapTextEmptyInput(t *testing.T) {
	face := caption.ResolveFont("", 32)

	for _, input := range []string{"", "   ", "\t\n"} {
		lines := caption.WrapText(face, input, 500)
		if len(lines) != 1 || lines[0] != " " {
			t.Fatalf("input %q: expected single space line, got %v", input, lines)
		}
	}
}

func TestWrapTextSingleShortWord(t *testing.T) {
	face := caption.ResolveFont("", 32)

	lines := caption.WrapText(face, "hi", 500)
	if len(lines) != 1 || lines[0] != "hi" {
		t.Fatalf("expected [hi], got %v", lines)
	}
}

func TestResolveFontNeverNil(t *testing.T) {
	// A bogus explicit path must fall through the chain, not fail.
	face := caption.ResolveFont("/nonexistent/font.ttf", 24)
	if face == nil {
		t.Fatal("ResolveFont returned nil face")
	}
	if caption.MeasureWidth(face, "test") <= 0 {
		t.Fatal("fallback face measures zero width")
	}
}
