package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

// Block is one parsed subtitle cue: its start time in milliseconds and its
// normalized text. Cues whose text normalizes to empty are never emitted.
type Block struct {
	StartMs int
	Text    string
}

var (
	reCueIndex = regexp.MustCompile(`^\d+$`)
	reTimecode = regexp.MustCompile(`^\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*\d{2}:\d{2}:\d{2},\d{3}\s*$`)
)

// Parse scans raw subtitle-track text and returns its cues in input order.
// Malformed cues and stray lines are skipped, never fatal: empty or fully
// unparsable input yields an empty slice.
func Parse(raw string) []Block {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	lines := strings.Split(raw, "\n")

	var blocks []Block
	i := 0
	for i < len(lines) {
		j := i
		if reCueIndex.MatchString(strings.TrimSpace(lines[j])) {
			j++
		}
		if j >= len(lines) {
			break
		}

		m := reTimecode.FindStringSubmatch(lines[j])
		if m == nil {
			i++
			continue
		}
		startMs := timecodeMs(m[1], m[2], m[3], m[4])
		j++

		var text []string
		for j < len(lines) && strings.TrimSpace(lines[j]) != "" {
			text = append(text, lines[j])
			j++
		}
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}

		if normalized := Normalize(strings.Join(text, "\n")); normalized != "" {
			blocks = append(blocks, Block{StartMs: startMs, Text: normalized})
		}
		i = j
	}

	return blocks
}

func timecodeMs(h, m, s, ms string) int {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return ((hours*60+minutes)*60+seconds)*1000 + millis
}
