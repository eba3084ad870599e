package transcript

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/caption-merge/internal/subtitle"
)

// onScreenMarker matches the descriptive-track prefix announcing on-screen
// text, tolerating a hyphen or space between the words and loose spacing
// around the colon: "On-screen text:", "on screen-text :", "ON-SCREEN-TEXT:".
var onScreenMarker = regexp.MustCompile(`(?i)^on[-\s]?screen[-\s]?text\s*:\s*`)

// TagDescriptive maps descriptive-track blocks to entries. A block whose
// first line carries the on-screen-text marker becomes an OnScreenText entry
// with the marker stripped from that line only; everything else becomes a
// Description entry. Pure function.
func TagDescriptive(blocks []subtitle.Block) []Entry {
	entries := make([]Entry, 0, len(blocks))
	for _, b := range blocks {
		lines := nonEmptyLines(b.Text)
		if len(lines) == 0 {
			continue
		}

		role := RoleDescription
		if onScreenMarker.MatchString(lines[0]) {
			role = RoleOnScreenText
			lines[0] = onScreenMarker.ReplaceAllString(lines[0], "")
			if lines[0] == "" {
				lines = lines[1:]
			}
		}

		text := strings.TrimSpace(strings.Join(lines, " "))
		if text == "" {
			continue
		}
		entries = append(entries, Entry{StartMs: b.StartMs, Role: role, Text: text})
	}
	return entries
}

// TagSpoken maps spoken-track blocks to Speaker entries, joining cue lines
// with single spaces. Pure function.
func TagSpoken(blocks []subtitle.Block) []Entry {
	entries := make([]Entry, 0, len(blocks))
	for _, b := range blocks {
		lines := nonEmptyLines(b.Text)
		if len(lines) == 0 {
			continue
		}
		entries = append(entries, Entry{
			StartMs: b.StartMs,
			Role:    RoleSpeaker,
			Text:    strings.Join(lines, " "),
		})
	}
	return entries
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
