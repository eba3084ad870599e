package subtitle

import (
	"regexp"
	"strings"
)

var (
	reMarkupTag  = regexp.MustCompile(`<[^>]*>`)
	reStyleBrace = regexp.MustCompile(`\{[^}]*\}`)
	reHorizWS    = regexp.MustCompile(`[ \t\f\v]+`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)

	zeroWidthReplacer = strings.NewReplacer(
		"\u200b", "", // zero-width space
		"\u200c", "", // zero-width non-joiner
		"\u200d", "", // zero-width joiner
		"\ufeff", "", // zero-width no-break space / BOM
	)
)

// Normalize strips presentation artifacts from cue text: HTML-style tags,
// brace styling directives, zero-width characters, and redundant whitespace.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = reMarkupTag.ReplaceAllString(s, "")
	s = reStyleBrace.ReplaceAllString(s, "")
	s = zeroWidthReplacer.Replace(s)

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\f\v")
	}
	s = strings.Join(lines, "\n")

	s = reHorizWS.ReplaceAllString(s, " ")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
