package combiner

import (
	"regexp"
	"strings"
)

// IdentifierPattern extracts the short code pairing a spoken track with its
// descriptive counterpart: the configured literal prefix, a hyphen, exactly
// three digits, and an optional trailing letter. Matching is case-insensitive;
// the canonical form keeps the configured prefix casing and lowercases the
// letter so cross-track joins never miss on case.
type IdentifierPattern struct {
	prefix string
	re     *regexp.Regexp
}

func NewIdentifierPattern(prefix string) *IdentifierPattern {
	return &IdentifierPattern{
		prefix: prefix,
		re:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prefix) + `-\d{3}[a-z]?`),
	}
}

// Extract finds the identifier in the filename first, then the content.
func (p *IdentifierPattern) Extract(filename, content string) (string, bool) {
	if m := p.find(filename); m != "" {
		return p.canonical(m), true
	}
	if m := p.find(content); m != "" {
		return p.canonical(m), true
	}
	return "", false
}

// find returns the first match not immediately followed by another digit,
// which would mean the code has more than three digits.
func (p *IdentifierPattern) find(s string) string {
	for _, loc := range p.re.FindAllStringIndex(s, -1) {
		if loc[1] < len(s) && s[loc[1]] >= '0' && s[loc[1]] <= '9' {
			continue
		}
		return s[loc[0]:loc[1]]
	}
	return ""
}

func (p *IdentifierPattern) canonical(match string) string {
	return p.prefix + strings.ToLower(match[len(p.prefix):])
}
