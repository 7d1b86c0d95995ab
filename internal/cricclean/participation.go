package cricclean

import "strings"

// Participation classifies what a free-text innings outcome says about
// the player's involvement.
type Participation string

const (
	Batted        Participation = "batted"
	Absent        Participation = "absent"
	DidNotBat     Participation = "dnb"
	TeamDidNotBat Participation = "tdnb"
	Substitute    Participation = "sub"
)

// ClassifyParticipation classifies one outcome string by
// case-insensitive substring match. "tdnb" is checked before "dnb"
// because the latter is a substring of the former. Anything that
// matches nothing — including missing input — is Batted; this never
// fails.
func ClassifyParticipation(s string) Participation {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "absent"):
		return Absent
	case strings.Contains(lower, "tdnb"):
		return TeamDidNotBat
	case strings.Contains(lower, "dnb"):
		return DidNotBat
	case strings.Contains(lower, "sub"):
		return Substitute
	}
	return Batted
}
