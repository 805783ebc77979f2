package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Cue is a single timed subtitle entry. Start and End are in seconds from
// the beginning of the video. Text is a single logical line; line breaks
// inside the source block are joined with " / ".
type Cue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the cue's duration in seconds (may be <= 0 for
// degenerate cues, which are simply never displayed).
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// LineSeparator joins the lines of a multi-line cue into one display line.
const LineSeparator = " / "

var timingPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

// Parse extracts timed cues from raw SRT text. Parsing is best-effort:
// blocks that don't match the numbered-block structure are skipped, and a
// fully malformed or empty source yields an empty slice, never an error.
// Cues keep their source order; no sorting or overlap validation is done.
func Parse(raw string) []Cue {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var cues []Cue
	for _, block := range strings.Split(raw, "\n\n") {
		if cue, ok := parseBlock(block); ok {
			cues = append(cues, cue)
		}
	}
	return cues
}

// ParseFile reads and parses an SRT file. An unreadable file is a fatal
// error; malformed content inside a readable file is not.
func ParseFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// parseBlock parses one blank-line-separated block: an index line, a timing
// line, and one or more text lines. Returns ok=false for anything that
// doesn't fit.
func parseBlock(block string) (Cue, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return Cue{}, false
	}

	// Index line must be a bare number.
	if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
		return Cue{}, false
	}

	m := timingPattern.FindStringSubmatch(strings.TrimSpace(lines[1]))
	if m == nil {
		return Cue{}, false
	}

	var textLines []string
	for _, line := range lines[2:] {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			textLines = append(textLines, trimmed)
		}
	}
	if len(textLines) == 0 {
		return Cue{}, false
	}

	return Cue{
		Start: timestampSeconds(m[1], m[2], m[3], m[4]),
		End:   timestampSeconds(m[5], m[6], m[7], m[8]),
		Text:  strings.Join(textLines, LineSeparator),
	}, true
}

// timestampSeconds converts HH:MM:SS,mmm components (already validated by
// the timing pattern) to seconds.
func timestampSeconds(h, m, s, ms string) float64 {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}
