package cricclean

// --------------------------------------------------------------------------
// Rename tables — applied after lower-casing the scraped column names.
// --------------------------------------------------------------------------

var battingRenames = map[string]string{
	"mat":        "matches",
	"inns":       "innings",
	"no":         "not_outs",
	"hs":         "highscore",
	"ave":        "average",
	"100":        "hundreds",
	"50":         "fifties",
	"0":          "ducks",
	"sr":         "strike_rate",
	"bf":         "balls_faced",
	"4s":         "fours",
	"6s":         "sixes",
	"mins":       "minutes",
	"start date": "date",
}

var bowlingRenames = map[string]string{
	"mat":        "matches",
	"inns":       "innings",
	"mdns":       "maidens",
	"wkts":       "wickets",
	"bbi":        "best_bowling_innings",
	"bbm":        "best_bowling_match",
	"ave":        "average",
	"econ":       "economy",
	"sr":         "strike_rate",
	"4":          "four_wickets",
	"5":          "five_wickets",
	"10":         "ten_wickets",
	"start date": "date",
}

var fieldingRenames = map[string]string{
	"mat":        "matches",
	"inns":       "innings",
	"dis":        "dismissals",
	"ct":         "caught",
	"st":         "stumped",
	"ct wk":      "caught_behind",
	"ct fi":      "caught_fielder",
	"md":         "max_dismissals_innings",
	"d/i":        "dismissals_innings",
	"start date": "date",
}

func renameTable(activity Activity) map[string]string {
	switch activity {
	case Bowling:
		return bowlingRenames
	case Fielding:
		return fieldingRenames
	}
	return battingRenames
}

// --------------------------------------------------------------------------
// Canonical column orders — columns absent from the cleaned table are
// omitted from the output, never synthesized as nulls.
// --------------------------------------------------------------------------

var battingCareerOrder = []string{
	"player", "country", "start", "end", "matches", "innings", "not_outs",
	"runs", "highscore", "highscore_notout", "average", "balls_faced",
	"strike_rate", "hundreds", "fifties", "ducks", "fours", "sixes",
}

var battingInningsOrder = []string{
	"date", "player", "country", "runs", "not_out", "minutes",
	"balls_faced", "fours", "sixes", "strike_rate", "innings",
	"participation", "opposition", "ground",
}

var bowlingCareerOrder = []string{
	"player", "country", "start", "end", "matches", "innings", "overs",
	"balls", "maidens", "runs", "wickets", "average", "economy",
	"strike_rate", "best_bowling_innings", "best_bowling_match",
	"four_wickets", "five_wickets", "ten_wickets",
}

var bowlingInningsOrder = []string{
	"date", "player", "country", "overs", "balls", "maidens", "runs",
	"wickets", "average", "economy", "strike_rate", "innings",
	"participation", "opposition", "ground",
}

// Fielding orders follow the same pattern as batting/bowling: career
// rows lead with player and span, innings rows lead with the date.
var fieldingCareerOrder = []string{
	"player", "country", "start", "end", "matches", "innings",
	"dismissals", "caught", "caught_behind", "caught_fielder", "stumped",
	"max_dismissals_innings", "dismissals_innings",
}

var fieldingInningsOrder = []string{
	"date", "player", "country", "dismissals", "caught", "stumped",
	"innings", "opposition", "ground",
}

func columnOrder(activity Activity, view View) []string {
	switch activity {
	case Bowling:
		if view == Career {
			return bowlingCareerOrder
		}
		return bowlingInningsOrder
	case Fielding:
		if view == Career {
			return fieldingCareerOrder
		}
		return fieldingInningsOrder
	}
	if view == Career {
		return battingCareerOrder
	}
	return battingInningsOrder
}

// requiredColumns lists the source columns (post-rename) the cleaning
// logic cannot proceed without; a missing one is a fatal SchemaError.
func requiredColumns(activity Activity, view View) []string {
	switch activity {
	case Batting:
		if view == Career {
			return []string{"player", "runs", "innings", "not_outs", "highscore"}
		}
		return []string{"player", "runs"}
	case Bowling:
		return []string{"player", "runs", "wickets"}
	case Fielding:
		return []string{"player", "dismissals"}
	}
	return nil
}
