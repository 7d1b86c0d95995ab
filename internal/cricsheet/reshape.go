// Package cricsheet ingests cricsheet.org ball-by-ball archives:
// downloading and extracting the zipped CSVs, reshaping delivery rows
// into running-score records, and pivoting per-match metadata.
package cricsheet

import (
	"fmt"
	"math"

	"github.com/cricbase/cricbase-data/internal/frame"
)

// deliveryOrder is the fixed output column order; trailing columns not
// listed here keep their original order after these.
var deliveryOrder = []string{
	"match_id", "season", "start_date", "venue", "innings", "over",
	"ball", "batting_team", "bowling_team", "striker", "non_striker",
	"bowler", "runs_off_bat", "extras", "ball_in_over", "extra_ball",
	"balls_remaining", "runs_scored_yet", "wicket", "wickets_lost_yet",
	"innings1_total", "innings2_total", "target", "wides", "noballs",
	"byes", "legbyes", "penalty", "wicket_type", "player_dismissed",
	"other_wicket_type", "other_player_dismissed",
}

// Reshape derives over/ball numbering, running totals, and chase
// targets from raw limited-overs delivery rows. Rows are processed in
// input order; cumulative values are computed independently per
// (match, innings) group.
//
// A match with fewer than two recorded innings gets missing
// innings2_total and target values — that is data, not an error.
func Reshape(raw *frame.Frame) (*frame.Frame, error) {
	// Match IDs stay text even when all digits; deliveries are keyed by
	// them downstream.
	if err := frame.CoerceExcept(raw, "match_id"); err != nil {
		return nil, err
	}
	for _, name := range []string{"match_id", "innings", "ball", "runs_off_bat", "extras"} {
		if !raw.Has(name) {
			return nil, &frame.SchemaError{Column: name}
		}
	}

	n := raw.Len()
	matchID := raw.Col("match_id")
	inningsCol := raw.Col("innings")
	ballCol := raw.Col("ball")
	runsOffBat := raw.Col("runs_off_bat")
	extrasCol := raw.Col("extras")
	wides := raw.Col("wides")
	noballs := raw.Col("noballs")
	wicketType := raw.Col("wicket_type")

	overVals := make([]int64, n)
	ballVals := make([]int64, n)
	bioVals := make([]int64, n)
	remVals := make([]int64, n)
	extraBall := make([]bool, n)
	wicket := make([]bool, n)
	runsYet := make([]int64, n)
	wktsYet := make([]int64, n)

	type inningsState struct {
		runs    int64
		wickets int64
	}
	type overState struct {
		count  int64
		extras int64
	}
	perInnings := make(map[string]*inningsState)
	perOver := make(map[string]*overState)

	type totalsKey struct {
		match   string
		innings int64
	}
	totals := make(map[totalsKey]int64)

	for i := 0; i < n; i++ {
		match := matchID.Format(i)
		inn, _ := inningsCol.Number(i)
		inningsNum := int64(inn)

		rawBall, _ := ballCol.Number(i)
		over := int64(math.Ceil(rawBall))
		overVals[i] = over

		// A dismissal counts as a wicket unless the batter retired hurt.
		if wicketType != nil && !wicketType.IsNull(i) && wicketType.Str(i) != "retired hurt" {
			wicket[i] = true
		}

		// Wides and no-balls add an extra delivery to the over.
		if wides != nil && !wides.IsNull(i) {
			extraBall[i] = true
		}
		if noballs != nil && !noballs.IsNull(i) {
			extraBall[i] = true
		}

		// Dense 1-based renumbering within (match, innings, over)
		// absorbs gaps in the source numbering.
		overKey := fmt.Sprintf("%s|%d|%d", match, inningsNum, over)
		ov := perOver[overKey]
		if ov == nil {
			ov = &overState{}
			perOver[overKey] = ov
		}
		ov.count++
		ballVals[i] = ov.count
		if extraBall[i] {
			ov.extras++
		}
		bioVals[i] = ov.count - ov.extras

		if inningsNum <= 2 {
			remVals[i] = 120 - ((over-1)*6 + bioVals[i])
		} else {
			// One-over eliminator innings.
			remVals[i] = 6 - bioVals[i]
		}

		var delta int64
		if v, ok := runsOffBat.Number(i); ok {
			delta += int64(v)
		}
		if v, ok := extrasCol.Number(i); ok {
			delta += int64(v)
		}

		inningsKey := fmt.Sprintf("%s|%d", match, inningsNum)
		st := perInnings[inningsKey]
		if st == nil {
			st = &inningsState{}
			perInnings[inningsKey] = st
		}
		st.runs += delta
		if wicket[i] {
			st.wickets++
		}
		runsYet[i] = st.runs
		wktsYet[i] = st.wickets

		totals[totalsKey{match, inningsNum}] += delta
	}

	// Innings totals pivot per match; super-over innings (3/4) never
	// contribute total columns. target = innings1_total + 1, broadcast
	// to every row of the match.
	i1Vals := make([]int64, n)
	i1Valid := make([]bool, n)
	i2Vals := make([]int64, n)
	i2Valid := make([]bool, n)
	targetVals := make([]int64, n)
	targetValid := make([]bool, n)
	for i := 0; i < n; i++ {
		match := matchID.Format(i)
		if t, ok := totals[totalsKey{match, 1}]; ok {
			i1Vals[i] = t
			i1Valid[i] = true
		}
		if t, ok := totals[totalsKey{match, 2}]; ok {
			i2Vals[i] = t
			i2Valid[i] = true
		}
		if i1Valid[i] && i2Valid[i] {
			targetVals[i] = i1Vals[i] + 1
			targetValid[i] = true
		}
	}

	raw.Set("over", frame.NewInts(overVals, trues(n)))
	raw.Set("ball", frame.NewInts(ballVals, trues(n)))
	raw.Set("ball_in_over", frame.NewInts(bioVals, trues(n)))
	raw.Set("extra_ball", frame.NewBools(extraBall, trues(n)))
	raw.Set("balls_remaining", frame.NewInts(remVals, trues(n)))
	raw.Set("runs_scored_yet", frame.NewInts(runsYet, trues(n)))
	raw.Set("wicket", frame.NewBools(wicket, trues(n)))
	raw.Set("wickets_lost_yet", frame.NewInts(wktsYet, trues(n)))
	raw.Set("innings1_total", frame.NewInts(i1Vals, i1Valid))
	raw.Set("innings2_total", frame.NewInts(i2Vals, i2Valid))
	raw.Set("target", frame.NewInts(targetVals, targetValid))

	return raw.Reorder(deliveryOrder), nil
}

func trues(n int) []bool {
	valid := make([]bool, n)
	for i := range valid {
		valid[i] = true
	}
	return valid
}
