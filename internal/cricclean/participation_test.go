package cricclean

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyParticipation(t *testing.T) {
	cases := map[string]Participation{
		"45":          Batted,
		"100*":        Batted,
		"DNB":         DidNotBat,
		"dnb":         DidNotBat,
		"TDNB":        TeamDidNotBat,
		"tdnb":        TeamDidNotBat,
		"absent hurt": Absent,
		"Absent":      Absent,
		"sub":         Substitute,
		"":            Batted,
	}
	for input, want := range cases {
		require.Equal(t, want, ClassifyParticipation(input), "input %q", input)
	}
}

func TestClassifyParticipationAbsentWins(t *testing.T) {
	// "absent" outranks every other marker when both appear.
	require.Equal(t, Absent, ClassifyParticipation("absent (sub)"))
}

func TestParseActivity(t *testing.T) {
	a, err := ParseActivity("Batting")
	require.NoError(t, err)
	require.Equal(t, Batting, a)

	_, err = ParseActivity("swimming")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("INNINGS")
	require.NoError(t, err)
	require.Equal(t, Innings, v)

	_, err = ParseView("monthly")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
