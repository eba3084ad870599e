package transcript

// Role is the semantic category of an entry. The declaration order is the
// tie-break priority for entries sharing a start time.
type Role int

const (
	RoleDescription Role = iota
	RoleOnScreenText
	RoleSpeaker
)

// Label returns the human-readable prefix used in rendered output.
func (r Role) Label() string {
	switch r {
	case RoleOnScreenText:
		return "On-screen text"
	case RoleSpeaker:
		return "Speaker"
	default:
		return "Description"
	}
}

// Entry is one timed transcript item: start time in milliseconds, role, and
// normalized text. Entries are immutable except during adjacent-merge, where
// a surviving speaker entry's text is extended in place.
type Entry struct {
	StartMs int
	Role    Role
	Text    string
}
