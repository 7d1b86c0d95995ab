package cricsheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cricbase/cricbase-data/internal/frame"
)

func deliveriesFrame(order []string, cols map[string][]string) *frame.Frame {
	f := frame.New()
	for _, name := range order {
		f.Set(name, frame.NewStrings(cols[name]))
	}
	return f
}

func TestReshapeDerivedColumns(t *testing.T) {
	// One over of innings 1 with a wide in the middle, then the start of
	// innings 2. Source ball numbering has a gap after the wide.
	raw := deliveriesFrame(
		[]string{"match_id", "innings", "ball", "runs_off_bat", "extras", "wides", "wicket_type"},
		map[string][]string{
			"match_id":     {"m1", "m1", "m1", "m1", "m1"},
			"innings":      {"1", "1", "1", "1", "2"},
			"ball":         {"0.1", "0.2", "0.2", "0.4", "0.1"},
			"runs_off_bat": {"1", "0", "4", "0", "2"},
			"extras":       {"0", "1", "0", "0", "0"},
			"wides":        {"", "1", "", "", ""},
			"wicket_type":  {"", "", "", "caught", ""},
		})

	out, err := Reshape(raw)
	require.NoError(t, err)
	require.Equal(t, 5, out.Len())

	// over = ceil(raw ball number).
	over := out.Col("over")
	require.Equal(t, int64(1), over.Int(0))
	require.Equal(t, int64(1), over.Int(3))
	require.Equal(t, int64(1), over.Int(4))

	// Dense 1-based renumbering per (match, innings, over).
	ball := out.Col("ball")
	require.Equal(t, []int64{1, 2, 3, 4, 1}, collectInts(t, ball))

	// ball_in_over discounts wides and no-balls, including the extra
	// delivery itself.
	bio := out.Col("ball_in_over")
	require.Equal(t, []int64{1, 1, 2, 3, 1}, collectInts(t, bio))

	// extra_ball flags only the wide.
	extra := out.Col("extra_ball")
	require.False(t, extra.Bool(0))
	require.True(t, extra.Bool(1))
	require.False(t, extra.Bool(2))

	// balls_remaining counts down from 120 legal deliveries.
	rem := out.Col("balls_remaining")
	require.Equal(t, []int64{119, 119, 118, 117, 119}, collectInts(t, rem))

	// Running totals restart each innings.
	runsYet := out.Col("runs_scored_yet")
	require.Equal(t, []int64{1, 2, 6, 6, 2}, collectInts(t, runsYet))

	wkts := out.Col("wickets_lost_yet")
	require.Equal(t, []int64{0, 0, 0, 1, 0}, collectInts(t, wkts))

	require.True(t, out.Col("wicket").Bool(3))
	require.False(t, out.Col("wicket").Bool(2))

	// Innings totals broadcast to every row; target = innings1_total + 1.
	require.Equal(t, int64(6), out.Col("innings1_total").Int(4))
	require.Equal(t, int64(2), out.Col("innings2_total").Int(0))
	require.Equal(t, int64(7), out.Col("target").Int(0))
}

func TestReshapeRetiredHurtIsNotAWicket(t *testing.T) {
	raw := deliveriesFrame(
		[]string{"match_id", "innings", "ball", "runs_off_bat", "extras", "wicket_type"},
		map[string][]string{
			"match_id":     {"m1", "m1"},
			"innings":      {"1", "1"},
			"ball":         {"0.1", "0.2"},
			"runs_off_bat": {"0", "0"},
			"extras":       {"0", "0"},
			"wicket_type":  {"retired hurt", "bowled"},
		})

	out, err := Reshape(raw)
	require.NoError(t, err)
	require.False(t, out.Col("wicket").Bool(0))
	require.True(t, out.Col("wicket").Bool(1))
	require.Equal(t, []int64{0, 1}, collectInts(t, out.Col("wickets_lost_yet")))
}

func TestReshapeSingleInningsHasNoTarget(t *testing.T) {
	// A washed-out match with only one innings: innings2_total and
	// target stay missing.
	raw := deliveriesFrame(
		[]string{"match_id", "innings", "ball", "runs_off_bat", "extras"},
		map[string][]string{
			"match_id":     {"m1"},
			"innings":      {"1"},
			"ball":         {"0.1"},
			"runs_off_bat": {"4"},
			"extras":       {"0"},
		})

	out, err := Reshape(raw)
	require.NoError(t, err)
	require.Equal(t, int64(4), out.Col("innings1_total").Int(0))
	require.True(t, out.Col("innings2_total").IsNull(0))
	require.True(t, out.Col("target").IsNull(0))
}

func TestReshapeSuperOverBallsRemaining(t *testing.T) {
	raw := deliveriesFrame(
		[]string{"match_id", "innings", "ball", "runs_off_bat", "extras"},
		map[string][]string{
			"match_id":     {"m1", "m1"},
			"innings":      {"3", "3"},
			"ball":         {"0.1", "0.2"},
			"runs_off_bat": {"1", "6"},
			"extras":       {"0", "0"},
		})

	out, err := Reshape(raw)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 4}, collectInts(t, out.Col("balls_remaining")))
	// Super-over innings never contribute total columns.
	require.True(t, out.Col("innings1_total").IsNull(0))
}

func TestReshapeMissingColumn(t *testing.T) {
	raw := deliveriesFrame(
		[]string{"match_id", "innings", "ball"},
		map[string][]string{
			"match_id": {"m1"},
			"innings":  {"1"},
			"ball":     {"0.1"},
		})

	_, err := Reshape(raw)
	var schemaErr *frame.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "runs_off_bat", schemaErr.Column)
}

func collectInts(t *testing.T, c *frame.Column) []int64 {
	t.Helper()
	out := make([]int64, c.Len())
	for i := 0; i < c.Len(); i++ {
		require.False(t, c.IsNull(i))
		out[i] = c.Int(i)
	}
	return out
}

func TestReshapeNumericMatchIDStaysText(t *testing.T) {
	raw := deliveriesFrame(
		[]string{"match_id", "innings", "ball", "runs_off_bat", "extras"},
		map[string][]string{
			"match_id":     {"1001349", "1001349"},
			"innings":      {"1", "1"},
			"ball":         {"0.1", "0.2"},
			"runs_off_bat": {"0", "4"},
			"extras":       {"0", "0"},
		})

	out, err := Reshape(raw)
	require.NoError(t, err)
	require.Equal(t, frame.String, out.Col("match_id").Kind())
	require.Equal(t, "1001349", out.Col("match_id").Str(1))
}
