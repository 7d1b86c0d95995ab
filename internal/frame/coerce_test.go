package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func stringFrame(cols map[string][]string, order ...string) *Frame {
	f := New()
	for _, name := range order {
		f.Set(name, NewStrings(cols[name]))
	}
	return f
}

func TestCoerceNumericColumn(t *testing.T) {
	f := stringFrame(map[string][]string{
		"runs": {"120", "35.5", ""},
	}, "runs")

	require.NoError(t, Coerce(f))

	col := f.Col("runs")
	require.Equal(t, Float, col.Kind())
	require.Equal(t, 120.0, col.Float(0))
	require.Equal(t, 35.5, col.Float(1))
	require.True(t, col.IsNull(2))
}

func TestCoerceAllOrNothing(t *testing.T) {
	// One unparseable value leaves the entire column as text.
	f := stringFrame(map[string][]string{
		"highscore": {"100", "56no", "23"},
	}, "highscore")

	require.NoError(t, Coerce(f))
	require.Equal(t, String, f.Col("highscore").Kind())
	require.Equal(t, "56no", f.Col("highscore").Str(1))
}

func TestCoerceNarrowsWholeFloatsToInts(t *testing.T) {
	f := stringFrame(map[string][]string{
		"wickets": {"3", "", "10"},
		"average": {"21.5", "34.0", "18.25"},
	}, "wickets", "average")

	require.NoError(t, Coerce(f))

	wickets := f.Col("wickets")
	require.Equal(t, Int, wickets.Kind())
	require.Equal(t, int64(3), wickets.Int(0))
	require.True(t, wickets.IsNull(1))
	require.Equal(t, int64(10), wickets.Int(2))

	// A single fractional value keeps the whole column float.
	require.Equal(t, Float, f.Col("average").Kind())
}

func TestCoerceTrimsAndNullsEmpty(t *testing.T) {
	f := stringFrame(map[string][]string{
		"ground": {"  Lord's ", "   ", "Eden Gardens"},
	}, "ground")

	require.NoError(t, Coerce(f))

	col := f.Col("ground")
	require.Equal(t, String, col.Kind())
	require.Equal(t, "Lord's", col.Str(0))
	require.True(t, col.IsNull(1))
}

func TestCoerceDateColumns(t *testing.T) {
	f := stringFrame(map[string][]string{
		"date":       {"14 Jun 1975", "2008-04-18", ""},
		"start_date": {"2008/04/18", "", ""},
	}, "date", "start_date")

	require.NoError(t, Coerce(f))

	date := f.Col("date")
	require.Equal(t, Date, date.Kind())
	require.Equal(t, time.Date(1975, 6, 14, 0, 0, 0, 0, time.UTC), date.Date(0))
	require.Equal(t, time.Date(2008, 4, 18, 0, 0, 0, 0, time.UTC), date.Date(1))
	require.True(t, date.IsNull(2))

	require.Equal(t, Date, f.Col("start_date").Kind())
}

func TestCoerceDateParseErrorFailsCall(t *testing.T) {
	f := stringFrame(map[string][]string{
		"date": {"14 Jun 1975", "not a date"},
	}, "date")

	err := Coerce(f)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "date", parseErr.Column)
	require.Equal(t, "not a date", parseErr.Value)
}

func TestCoerceDateDetectionIsSubstringMatch(t *testing.T) {
	// Any column whose name contains "date" is treated as dates, so a
	// numeric-looking value there is a parse error, not a number.
	f := stringFrame(map[string][]string{
		"update_count": {"3"},
	}, "update_count")

	err := Coerce(f)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "update_count", parseErr.Column)
}

func TestAppendRows(t *testing.T) {
	a := stringFrame(map[string][]string{
		"player": {"A"},
		"runs":   {"10"},
	}, "player", "runs")
	b := stringFrame(map[string][]string{
		"player": {"B", "C"},
		"runs":   {"20", "30"},
	}, "player", "runs")

	require.NoError(t, a.AppendRows(b))
	require.Equal(t, 3, a.Len())
	require.Equal(t, "C", a.Col("player").Str(2))
}

func TestAppendRowsColumnMismatch(t *testing.T) {
	a := stringFrame(map[string][]string{"player": {"A"}}, "player")
	b := stringFrame(map[string][]string{
		"player": {"B"},
		"runs":   {"20"},
	}, "player", "runs")

	require.Error(t, a.AppendRows(b))
}

func TestReorderKeepsUnlistedColumns(t *testing.T) {
	f := stringFrame(map[string][]string{
		"c": {"3"}, "a": {"1"}, "b": {"2"},
	}, "c", "a", "b")

	out := f.Reorder([]string{"a", "missing", "b"})
	require.Equal(t, []string{"a", "b", "c"}, out.Names())
}

func TestSelectSkipsAbsentColumns(t *testing.T) {
	f := stringFrame(map[string][]string{
		"a": {"1"}, "b": {"2"},
	}, "a", "b")

	out := f.Select([]string{"b", "missing", "a"})
	require.Equal(t, []string{"b", "a"}, out.Names())
}

func TestCoerceExceptPinsColumnsToText(t *testing.T) {
	f := stringFrame(map[string][]string{
		"match_id": {" 1001349 ", "1001350", ""},
		"runs":     {"12", "4", "0"},
	}, "match_id", "runs")

	require.NoError(t, CoerceExcept(f, "match_id"))

	// Exempted columns are trimmed and null-checked but never converted.
	id := f.Col("match_id")
	require.Equal(t, String, id.Kind())
	require.Equal(t, "1001349", id.Str(0))
	require.True(t, id.IsNull(2))

	// Everything else coerces as usual.
	require.Equal(t, Int, f.Col("runs").Kind())
}
