package transcript

import (
	"regexp"
	"sort"
	"strings"
)

// dedupeWindowMs is how far apart (inclusive) two entries may start and still
// be considered the same utterance when their comparison keys match.
const dedupeWindowMs = 750

var (
	markerAnywhere = regexp.MustCompile(`(?i)on[-\s]?screen[-\s]?text\s*:\s*`)
	nonAlnum       = regexp.MustCompile(`[^a-z0-9]+`)
)

// Merge produces the final transcript order from the combined entries of both
// tracks: stable sort by start time with role-priority tie-breaks, windowed
// near-duplicate suppression, then consolidation of adjacent speaker entries.
// It never modifies its input slice.
func Merge(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartMs != sorted[j].StartMs {
			return sorted[i].StartMs < sorted[j].StartMs
		}
		return sorted[i].Role < sorted[j].Role
	})

	return consolidate(dedupe(sorted))
}

// dedupe walks the sorted entries keeping an accumulator. Each candidate is
// compared, by normalized key, against accumulator entries backward until the
// time gap exceeds the window; the first key match wins. A Speaker candidate
// colliding with a non-Speaker entry replaces it in place, keeping its slot.
func dedupe(sorted []Entry) []Entry {
	kept := make([]Entry, 0, len(sorted))
	keys := make([]string, 0, len(sorted))

	for _, cand := range sorted {
		key := comparisonKey(cand.Text)
		matched := false

		for j := len(kept) - 1; j >= 0; j-- {
			if cand.StartMs-kept[j].StartMs > dedupeWindowMs {
				break
			}
			if keys[j] != key {
				continue
			}
			if kept[j].Role != RoleSpeaker && cand.Role == RoleSpeaker {
				kept[j] = cand
			}
			matched = true
			break
		}

		if !matched {
			kept = append(kept, cand)
			keys = append(keys, key)
		}
	}

	return kept
}

// consolidate folds each run of consecutive Speaker entries into the first of
// the run. Other roles are never folded, even when adjacent and same-role.
func consolidate(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(out) > 0 && e.Role == RoleSpeaker && out[len(out)-1].Role == RoleSpeaker {
			out[len(out)-1].Text = joinSpeech(out[len(out)-1].Text, e.Text)
			continue
		}
		out = append(out, e)
	}
	return out
}

// comparisonKey reduces text to its deduplication key: lowercase, on-screen
// markers removed wherever they occur, everything but [a-z0-9] dropped.
func comparisonKey(text string) string {
	s := strings.ToLower(text)
	s = markerAnywhere.ReplaceAllString(s, "")
	return nonAlnum.ReplaceAllString(s, "")
}

func joinSpeech(a, b string) string {
	return strings.Join(strings.Fields(a+" "+b), " ")
}
