package transcript

import "strings"

// Render serializes entries to the plain-text transcript format: one
// "<Label>: <text>" line per entry, entries separated by one blank line.
// Timecodes never appear in the output.
func Render(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Role.Label()+": "+e.Text)
	}
	return strings.Join(lines, "\n\n")
}
