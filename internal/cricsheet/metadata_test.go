package cricsheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cricbase/cricbase-data/internal/frame"
)

func longFrame(rows [][3]string) *frame.Frame {
	matchIDs := make([]string, len(rows))
	keys := make([]string, len(rows))
	values := make([]string, len(rows))
	for i, r := range rows {
		matchIDs[i] = r[0]
		keys[i] = r[1]
		values[i] = r[2]
	}
	f := frame.New()
	f.Set("match_id", frame.NewStrings(matchIDs))
	f.Set("key", frame.NewStrings(keys))
	f.Set("value", frame.NewStrings(values))
	return f
}

func TestPivotMatchMetadata(t *testing.T) {
	long := longFrame([][3]string{
		{"m1", "team", "India"},
		{"m1", "team", "Australia"},
		{"m1", "gender", "male"},
		{"m1", "season", "2016/17"},
		{"m1", "venue", "Eden Gardens"},
		{"m1", "umpire", "A Taylor"},
		{"m1", "umpire", "B Oxenford"},
		{"m1", "umpire", "C Reserve"},
		{"m2", "team", "England"},
		{"m2", "team", "Pakistan"},
		{"m2", "gender", "male"},
		{"m2", "balls_per_over", "6"},
	})

	out, err := PivotMatchMetadata(long)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	// Repeated team keys become team1/team2 by occurrence order.
	require.Equal(t, "India", out.Col("team1").Str(0))
	require.Equal(t, "Australia", out.Col("team2").Str(0))
	require.Equal(t, "England", out.Col("team1").Str(1))

	// Third umpire entry is discarded, first two are numbered.
	require.Equal(t, "A Taylor", out.Col("umpire1").Str(0))
	require.Equal(t, "B Oxenford", out.Col("umpire2").Str(0))
	require.False(t, out.Has("umpire3"))

	// Keys absent for a match stay missing.
	require.True(t, out.Col("venue").IsNull(1))
	require.True(t, out.Col("umpire1").IsNull(1))

	// Pivoted values coerce like any other table.
	require.Equal(t, frame.Int, out.Col("balls_per_over").Kind())
	require.Equal(t, int64(6), out.Col("balls_per_over").Int(1))

	// Mixed-format seasons stay text.
	require.Equal(t, "2016/17", out.Col("season").Str(0))
}

func TestPivotMatchMetadataFirstOccurrenceWins(t *testing.T) {
	long := longFrame([][3]string{
		{"m1", "venue", "Lord's"},
		{"m1", "venue", "The Oval"},
	})

	out, err := PivotMatchMetadata(long)
	require.NoError(t, err)
	require.Equal(t, "Lord's", out.Col("venue").Str(0))
}

func TestPivotMatchMetadataSkipsPlayerKeys(t *testing.T) {
	long := longFrame([][3]string{
		{"m1", "gender", "female"},
		{"m1", "players", "India"},
		{"m1", "registry", "people"},
	})

	out, err := PivotMatchMetadata(long)
	require.NoError(t, err)
	require.False(t, out.Has("players"))
	require.False(t, out.Has("registry"))
}

func TestPivotMatchMetadataMissingColumn(t *testing.T) {
	f := frame.New()
	f.Set("match_id", frame.NewStrings([]string{"m1"}))
	f.Set("key", frame.NewStrings([]string{"venue"}))

	_, err := PivotMatchMetadata(f)
	var schemaErr *frame.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "value", schemaErr.Column)
}

func TestExtractPlayers(t *testing.T) {
	f := frame.New()
	f.Set("match_id", frame.NewStrings([]string{"m1", "m1", "m1", "m1"}))
	f.Set("key", frame.NewStrings([]string{"team", "players", "players", "player"}))
	f.Set("value", frame.NewStrings([]string{"India", "India", "India", "Australia"}))
	f.Set("player", frame.NewStringsValid(
		[]string{"", "V Kohli", "RG Sharma", "SPD Smith"},
		[]bool{false, true, true, true},
	))

	out, err := ExtractPlayers(f)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())

	require.Equal(t, "V Kohli", out.Col("player").Str(0))
	require.Equal(t, "India", out.Col("team").Str(0))
	require.Equal(t, "SPD Smith", out.Col("player").Str(2))
	require.Equal(t, "Australia", out.Col("team").Str(2))
}

func TestPivotMatchMetadataNumericMatchIDStaysText(t *testing.T) {
	long := longFrame([][3]string{
		{"1001349", "team", "India"},
		{"1001349", "team", "Australia"},
	})

	out, err := PivotMatchMetadata(long)
	require.NoError(t, err)
	require.Equal(t, frame.String, out.Col("match_id").Kind())
	require.Equal(t, "1001349", out.Col("match_id").Str(0))

	// The storage layer keys matches by the string ID out of RowMap.
	id, ok := out.RowMap(0)["match_id"].(string)
	require.True(t, ok, "match_id must stay a string, got %T", out.RowMap(0)["match_id"])
	require.Equal(t, "1001349", id)
}
