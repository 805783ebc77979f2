package subtitle_test

import (
	"math"
	"testing"

	"github.com/AndrewDonelson/caption-studio/pkg/subtitle"
)

func TestParseBasicBlocks(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:03,000\nHello\n\n2\n00:00:03,500 --> 00:00:05,000\nWorld\n"

	cues := subtitle.Parse(raw)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Start != 1.0 || cues[0].End != 3.0 || cues[0].Text != "Hello" {
		t.Fatalf("unexpected first cue: %+v", cues[0])
	}
	if cues[1].Start != 3.5 || cues[1].End != 5.0 || cues[1].Text != "World" {
		t.Fatalf("unexpected second cue: %+v", cues[1])
	}
}

func TestParseTimestampArithmetic(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"1\n01:02:03,456 --> 01:02:04,000\nx\n", 1*3600 + 2*60 + 3 + 0.456},
		{"1\n00:00:00,001 --> 00:00:01,000\nx\n", 0.001},
		{"1\n10:59:59,999 --> 11:00:00,000\nx\n", 10*3600 + 59*60 + 59 + 0.999},
	}

	for _, tc := range cases {
		cues := subtitle.Parse(tc.raw)
		if len(cues) != 1 {
			t.Fatalf("expected 1 cue for %q, got %d", tc.raw, len(cues))
		}
		if math.Abs(cues[0].Start-tc.want) > 1e-9 {
			t.Fatalf("start for %q: got %v want %v", tc.raw, cues[0].Start, tc.want)
		}
	}
}

func TestParseJoinsMultilineText(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000\nfirst line\nsecond line\n"

	cues := subtitle.Parse(raw)
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "first line / second line" {
		t.Fatalf("unexpected joined text: %q", cues[0].Text)
	}
}

func TestParseSkipsMalformedBlocks(t *testing.T) {
	raw := "garbage block\nwith no timing\n\n" +
		"1\n00:00:01,000 --> 00:00:02,000\nkept\n\n" +
		"2\nnot a timestamp --> still not\ndropped\n\n" +
		"3\n00:00:05,000 --> 00:00:06,000\n\n"

	cues := subtitle.Parse(raw)
	if len(cues) != 1 {
		t.Fatalf("expected only the well-formed cue, got %d", len(cues))
	}
	if cues[0].Text != "kept" {
		t.Fatalf("wrong cue survived: %+v", cues[0])
	}
}

func TestParseEmptySource(t *testing.T) {
	if cues := subtitle.Parse(""); len(cues) != 0 {
		t.Fatalf("expected no cues from empty source, got %d", len(cues))
	}
	if cues := subtitle.Parse("\n\n\n"); len(cues) != 0 {
		t.Fatalf("expected no cues from blank source, got %d", len(cues))
	}
}

func TestParseToleratesInvertedTiming(t *testing.T) {
	raw := "1\n00:00:05,000 --> 00:00:02,000\nbackwards\n"

	cues := subtitle.Parse(raw)
	if len(cues) != 1 {
		t.Fatalf("inverted cue should still parse, got %d cues", len(cues))
	}
	if cues[0].Duration() >= 0 {
		t.Fatalf("expected negative duration, got %v", cues[0].Duration())
	}
}

func TestParseKeepsSourceOrder(t *testing.T) {
	raw := "1\n00:00:10,000 --> 00:00:12,000\nlater\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nearlier\n"

	cues := subtitle.Parse(raw)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Text != "later" || cues[1].Text != "earlier" {
		t.Fatal("cues were reordered; parser must keep source order")
	}
}

func TestParseCRLFSource(t *testing.T) {
	raw := "1\r\n00:00:01,000 --> 00:00:02,000\r\nwindows line endings\r\n\r\n"

	cues := subtitle.Parse(raw)
	if len(cues) != 1 || cues[0].Text != "windows line endings" {
		t.Fatalf("CRLF source not handled: %+v", cues)
	}
}
