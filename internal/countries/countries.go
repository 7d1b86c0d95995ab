// Package countries normalizes the inconsistent country tokens cricket
// stat sources use (abbreviations, suffixes, codes) into canonical
// country names, and maps canonical names to the numeric team
// identifiers Statsguru request URLs expect.
//
// The rule table and code tables are fixed external contracts: rule
// order matters because substitutions apply sequentially, each rule's
// output feeding the next rule's input.
package countries

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotFound indicates a country or team-code lookup failed.
var ErrNotFound = errors.New("country not found")

// Competition selects which team-code table applies. Codes are not
// globally unique across the two tables: 3 is South Africa in men's
// competition but belongs to a different country in women's.
type Competition string

const (
	Men   Competition = "men"
	Women Competition = "women"
)

// DefaultCutoff is the similarity floor for fuzzy country resolution.
const DefaultCutoff = 0.5

type rule struct {
	pattern *regexp.Regexp
	repl    string
}

// Normalizer applies the fixed rename rules and code tables. It is
// immutable after construction and safe for concurrent use.
type Normalizer struct {
	rules []rule
	codes map[Competition]map[string]int
}

// New builds a Normalizer over the fixed rule and code tables.
func New() *Normalizer {
	return &Normalizer{rules: renameRules, codes: teamCodes}
}

var std = New()

// Canonicalize applies every rename rule, in order, to the token.
// Unmatched input is returned unchanged — it is either already
// canonical or unrecognized, never an error.
func (n *Normalizer) Canonicalize(token string) string {
	for _, r := range n.rules {
		token = r.pattern.ReplaceAllString(token, r.repl)
	}
	return token
}

// TeamCode looks up the numeric team identifier for an exact canonical
// country name within a competition.
func (n *Normalizer) TeamCode(name string, competition Competition) (int, error) {
	table, ok := n.codes[competition]
	if !ok {
		return 0, fmt.Errorf("invalid competition %q: must be %q or %q", competition, Men, Women)
	}
	code, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("no team code for %q in %s competition: %w", name, competition, ErrNotFound)
	}
	return code, nil
}

// Resolve fuzzy-matches input against the competition's country table,
// case-insensitively, and returns the canonical name plus team code of
// the single closest match. It fails with ErrNotFound when no candidate
// clears the cutoff.
func (n *Normalizer) Resolve(input string, competition Competition, cutoff float64) (string, int, error) {
	table, ok := n.codes[competition]
	if !ok {
		return "", 0, fmt.Errorf("invalid competition %q: must be %q or %q", competition, Men, Women)
	}

	lowered := strings.ToLower(input)
	best := ""
	bestScore := 0.0
	for name := range table {
		score := similarity(lowered, strings.ToLower(name))
		if score > bestScore {
			bestScore = score
			best = name
		}
	}
	if best == "" || bestScore < cutoff {
		return "", 0, fmt.Errorf("no country matching %q in %s competition: %w", input, competition, ErrNotFound)
	}
	code, err := n.TeamCode(best, competition)
	if err != nil {
		return "", 0, err
	}
	return best, code, nil
}

// Package-level helpers over the default Normalizer.

func Canonicalize(token string) string { return std.Canonicalize(token) }

func TeamCode(name string, competition Competition) (int, error) {
	return std.TeamCode(name, competition)
}

func Resolve(input string, competition Competition, cutoff float64) (string, int, error) {
	return std.Resolve(input, competition, cutoff)
}
