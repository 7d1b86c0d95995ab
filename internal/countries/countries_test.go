package countries

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	cases := map[string]string{
		"AFG":      "Afghanistan",
		"AUS":      "Australia",
		"Bdesh":    "Bangladesh",
		"BD":       "Bangladesh",
		"ENG":      "England",
		"IND":      "India",
		"INDIA":    "India",
		"NZ":       "New Zealand",
		"PAK":      "Pakistan",
		"P.N.G.":   "Papua New Guinea",
		"SA":       "South Africa",
		"SCOT":     "Scotland",
		"SL":       "Sri Lanka",
		"T & T":    "Trinidad and Tobago",
		"U.A.E.":   "United Arab Emirates",
		"USA":      "United States of America",
		"WI":       "West Indies",
		"Y. Eng":   "Young England",
		"ZIM":      "Zimbabwe",
		"DnWmn":    "Denmark",
		"JamWn":    "Jamaica",
		"World-XI": "World XI",
	}
	for input, want := range cases {
		require.Equal(t, want, Canonicalize(input), "input %q", input)
	}
}

func TestCanonicalizeUnmatchedPassesThrough(t *testing.T) {
	require.Equal(t, "England", Canonicalize("England"))
	require.Equal(t, "Narnia", Canonicalize("Narnia"))
}

func TestCanonicalizeRuleOrder(t *testing.T) {
	// "Scot$" only fires for the suffix form; the prefix-anchored South
	// Africa rule must not touch it.
	require.Equal(t, "Scotland", Canonicalize("Scot"))
	// "Neth$" must win before a bare NL could.
	require.Equal(t, "Netherlands", Canonicalize("Neth"))
}

func TestTeamCode(t *testing.T) {
	code, err := TeamCode("England", Men)
	require.NoError(t, err)
	require.Equal(t, 1, code)

	code, err = TeamCode("England", Women)
	require.NoError(t, err)
	require.Equal(t, 1026, code)

	// Same code number means different countries per competition.
	code, err = TeamCode("South Africa", Men)
	require.NoError(t, err)
	require.Equal(t, 3, code)
}

func TestTeamCodeNotFound(t *testing.T) {
	_, err := TeamCode("Atlantis", Men)
	require.ErrorIs(t, err, ErrNotFound)

	// Kenya only exists in the men's table.
	_, err = TeamCode("Kenya", Women)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamCodeInvalidCompetition(t *testing.T) {
	_, err := TeamCode("England", Competition("juniors"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestResolveFuzzy(t *testing.T) {
	name, code, err := Resolve("eng", Men, DefaultCutoff)
	require.NoError(t, err)
	require.Equal(t, "England", name)
	require.Equal(t, 1, code)

	name, code, err = Resolve("ZIM", Men, DefaultCutoff)
	require.NoError(t, err)
	require.Equal(t, "Zimbabwe", name)
	require.Equal(t, 9, code)

	// Case-insensitive exact name.
	name, _, err = Resolve("new zealand", Men, DefaultCutoff)
	require.NoError(t, err)
	require.Equal(t, "New Zealand", name)
}

func TestResolveBelowCutoff(t *testing.T) {
	_, _, err := Resolve("not-a-real-country", Men, DefaultCutoff)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, similarity("england", "england"), 1e-9)
	require.InDelta(t, 0.6, similarity("eng", "england"), 1e-9)
	require.InDelta(t, 0.0, similarity("quuq", "england"), 1e-9)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	// Canonical names must pass through the rule table untouched.
	for _, r := range renameRules {
		require.Equal(t, r.repl, Canonicalize(r.repl), "canonical %q re-matched a rule", r.repl)
	}

	// Rule-matching tokens settle after one pass.
	tokens := []string{
		"AFG", "AUS", "Bdesh", "BD", "CAN", "Denmk", "ENG", "HKG", "ICC",
		"INDIA", "IRE", "JPN", "KENYA", "NAM", "NEPAL", "Neth", "NL",
		"NZ", "OMAN", "PAK", "P.N.G.", "SA", "SCOT", "SL", "T & T",
		"U.A.E.", "USA", "World-XI", "WI", "Y. Eng", "ZIM",
	}
	for _, tok := range tokens {
		once := Canonicalize(tok)
		require.Equal(t, once, Canonicalize(once), "token %q did not settle", tok)
	}
}
