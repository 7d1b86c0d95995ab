package cricclean

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cricbase/cricbase-data/internal/frame"
)

func rawFrame(order []string, cols map[string][]string) *frame.Frame {
	f := frame.New()
	for _, name := range order {
		f.Set(name, frame.NewStrings(cols[name]))
	}
	return f
}

func TestCleanBattingCareer(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Span", "Mat", "Inns", "NO", "Runs", "HS", "Ave", "100", "50", "0"},
		map[string][]string{
			"Player": {"DG Bradman (AUS)", "SR Tendulkar (INDIA)"},
			"Span":   {"1928-1948", "1989-2013"},
			"Mat":    {"52", "200"},
			"Inns":   {"80", "329"},
			"NO":     {"10", "33"},
			"Runs":   {"6996", "15921"},
			"HS":     {"334", "248*"},
			"Ave":    {"99.94", "53.78"},
			"100":    {"29", "51"},
			"50":     {"13", "68"},
			"0":      {"7", "14"},
		})

	out, view, err := Clean(raw, Batting)
	require.NoError(t, err)
	require.Equal(t, Career, view)

	// Country extracted from the player annotation and canonicalized.
	require.Equal(t, "DG Bradman", out.Col("player").Str(0))
	require.Equal(t, "Australia", out.Col("country").Str(0))
	require.Equal(t, "India", out.Col("country").Str(1))

	// Span split into integer start/end.
	require.Equal(t, frame.Int, out.Col("start").Kind())
	require.Equal(t, int64(1928), out.Col("start").Int(0))
	require.Equal(t, int64(2013), out.Col("end").Int(1))

	// Highscore not-out marker pulled into its own column.
	require.False(t, out.Col("highscore_notout").Bool(0))
	require.True(t, out.Col("highscore_notout").Bool(1))
	require.Equal(t, frame.Int, out.Col("highscore").Kind())
	require.Equal(t, int64(248), out.Col("highscore").Int(1))

	// Average recomputed as runs / (innings - not_outs).
	avg := out.Col("average")
	require.Equal(t, frame.Float, avg.Kind())
	require.InDelta(t, 6996.0/70.0, avg.Float(0), 1e-9)
	require.InDelta(t, 15921.0/296.0, avg.Float(1), 1e-9)

	// Canonical order leads with player and country.
	names := out.Names()
	require.Equal(t, "player", names[0])
	require.Equal(t, "country", names[1])
}

func TestCleanBattingCareerNoAnnotations(t *testing.T) {
	// Single-country tables carry no "(XYZ)" annotation; no country
	// column is synthesized.
	raw := rawFrame(
		[]string{"Player", "Mat", "Inns", "NO", "Runs", "HS"},
		map[string][]string{
			"Player": {"JH Kallis"},
			"Mat":    {"166"},
			"Inns":   {"280"},
			"NO":     {"40"},
			"Runs":   {"13289"},
			"HS":     {"224"},
		})

	out, _, err := Clean(raw, Batting)
	require.NoError(t, err)
	require.False(t, out.Has("country"))
	require.Equal(t, "JH Kallis", out.Col("player").Str(0))
}

func TestCleanBattingInnings(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Runs", "BF", "Opposition", "Ground", "Start Date"},
		map[string][]string{
			"Player":     {"V Kohli (INDIA)", "MS Dhoni (INDIA)", "R Ashwin (INDIA)"},
			"Runs":       {"82*", "DNB", "TDNB"},
			"BF":         {"53", "-", "-"},
			"Opposition": {"v Australia", "v ENG", "v NZ Wmn"},
			"Ground":     {"Mohali", "Lord's", "Leeds"},
			"Start Date": {"27 Mar 2016", "21 Jun 2017", "3 Jul 2021"},
		})

	out, view, err := Clean(raw, Batting)
	require.NoError(t, err)
	require.Equal(t, Innings, view)

	// Not-out marker stripped into its own flag.
	require.True(t, out.Col("not_out").Bool(0))
	require.False(t, out.Col("not_out").Bool(1))

	// Participation classified from the runs text; non-batting rows get
	// missing runs.
	parts := out.Col("participation")
	require.Equal(t, string(Batted), parts.Str(0))
	require.Equal(t, string(DidNotBat), parts.Str(1))
	require.Equal(t, string(TeamDidNotBat), parts.Str(2))

	runs := out.Col("runs")
	require.Equal(t, frame.Int, runs.Kind())
	require.Equal(t, int64(82), runs.Int(0))
	require.True(t, runs.IsNull(1))
	require.True(t, runs.IsNull(2))

	// Opposition prefix and women suffixes trimmed, then canonicalized.
	opp := out.Col("opposition")
	require.Equal(t, "Australia", opp.Str(0))
	require.Equal(t, "England", opp.Str(1))
	require.Equal(t, "New Zealand", opp.Str(2))

	// Strike rate recomputed from balls faced; "-" balls stay missing.
	sr := out.Col("strike_rate")
	require.InDelta(t, 82.0/53.0*100, sr.Float(0), 1e-9)
	require.True(t, sr.IsNull(1))

	// "Start Date" renamed and parsed.
	date := out.Col("date")
	require.Equal(t, frame.Date, date.Kind())
	require.Equal(t, time.Date(2016, 3, 27, 0, 0, 0, 0, time.UTC), date.Date(0))
}

func TestCleanBowlingInnings(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Overs", "Mdns", "Runs", "Wkts", "Econ", "Ground", "Start Date"},
		map[string][]string{
			"Player":     {"JJ Bumrah (INDIA)", "MA Starc (AUS)", "TG Southee (NZ)"},
			"Overs":      {"4.3", "10.0", "DNB"},
			"Mdns":       {"0", "1", "-"},
			"Runs":       {"27", "80", "-"},
			"Wkts":       {"2", "1", "-"},
			"Econ":       {"6.00", "7.00", "-"},
			"Ground":     {"Durban", "Perth", "Hamilton"},
			"Start Date": {"7 Jan 2024", "14 Dec 2022", "1 Jan 2020"},
		})

	out, view, err := Clean(raw, Bowling)
	require.NoError(t, err)
	require.Equal(t, Innings, view)

	// Balls derived from overs notation: 4.3 overs = 27 balls.
	balls := out.Col("balls")
	require.Equal(t, int64(27), balls.Int(0))
	require.Equal(t, int64(60), balls.Int(1))
	require.True(t, balls.IsNull(2))

	// Economy: row 0 recomputes to exactly the reported value and keeps
	// it; row 1 recomputes to 8.0 against a reported 7.0 and overrides.
	econ := out.Col("economy")
	require.InDelta(t, 6.0, econ.Float(0), 1e-9)
	require.InDelta(t, 8.0, econ.Float(1), 1e-9)
	require.True(t, econ.IsNull(2))

	// DNB row: participation recorded, overs cleared.
	require.Equal(t, string(DidNotBat), out.Col("participation").Str(2))
	require.True(t, out.Col("overs").IsNull(2))

	// average = runs/wickets, strike_rate = balls/wickets.
	require.InDelta(t, 13.5, out.Col("average").Float(0), 1e-9)
	require.InDelta(t, 13.5, out.Col("strike_rate").Float(0), 1e-9)
	require.InDelta(t, 80.0, out.Col("average").Float(1), 1e-9)
}

func TestCleanBowlingCareer(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Span", "Mat", "Inns", "Balls", "Runs", "Wkts", "Econ"},
		map[string][]string{
			"Player": {"M Muralidaran (SL)"},
			"Span":   {"1992-2010"},
			"Mat":    {"133"},
			"Inns":   {"230"},
			"Balls":  {"44039"},
			"Runs":   {"18180"},
			"Wkts":   {"800"},
			"Econ":   {"2.47"},
		})

	out, view, err := Clean(raw, Bowling)
	require.NoError(t, err)
	require.Equal(t, Career, view)

	require.Equal(t, "Sri Lanka", out.Col("country").Str(0))
	require.InDelta(t, 18180.0/800.0, out.Col("average").Float(0), 1e-9)
	require.InDelta(t, 44039.0/800.0, out.Col("strike_rate").Float(0), 1e-9)

	// Reported economy within tolerance of the recomputation survives.
	require.InDelta(t, 2.47, out.Col("economy").Float(0), 1e-9)
}

func TestCleanFieldingCareer(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Span", "Mat", "Inns", "Dis", "Ct", "St"},
		map[string][]string{
			"Player": {"MV Boucher (SA)"},
			"Span":   {"1997-2012"},
			"Mat":    {"147"},
			"Inns":   {"283"},
			"Dis":    {"555"},
			"Ct":     {"532"},
			"St":     {"23"},
		})

	out, view, err := Clean(raw, Fielding)
	require.NoError(t, err)
	require.Equal(t, Career, view)

	require.Equal(t, "South Africa", out.Col("country").Str(0))
	require.Equal(t, int64(555), out.Col("dismissals").Int(0))
	require.Equal(t, int64(1997), out.Col("start").Int(0))
}

func TestCleanMissingRequiredColumn(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Mat", "Inns", "NO", "Runs"},
		map[string][]string{
			"Player": {"X"},
			"Mat":    {"1"},
			"Inns":   {"1"},
			"NO":     {"0"},
			"Runs":   {"10"},
		})

	_, _, err := Clean(raw, Batting)
	var schemaErr *frame.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "highscore", schemaErr.Column)
}

func TestCleanDropsUnknownColumns(t *testing.T) {
	raw := rawFrame(
		[]string{"Player", "Runs", "Mystery"},
		map[string][]string{
			"Player":  {"X"},
			"Runs":    {"10"},
			"Mystery": {"??"},
		})

	out, _, err := Clean(raw, Batting)
	require.NoError(t, err)
	require.False(t, out.Has("mystery"))
}
