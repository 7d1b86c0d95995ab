package cricsheet

import (
	"fmt"

	"github.com/cricbase/cricbase-data/internal/frame"
)

// metadataOrder is the fixed leading column order for pivoted match
// metadata; keys not listed here follow in first-seen order.
var metadataOrder = []string{
	"match_id", "team1", "team2", "gender", "season", "date", "event",
	"match_number", "venue", "city", "balls_per_over", "toss_winner",
	"toss_decision", "player_of_match",
}

// playerKeys are handled by ExtractPlayers, not the metadata pivot.
var playerKeys = map[string]bool{
	"player":   true,
	"players":  true,
	"registry": true,
}

// PivotMatchMetadata pivots long key/value metadata rows into one wide
// row per match. Repeated team and umpire keys are disambiguated by
// per-match occurrence order (team1/team2, umpire1/umpire2); a third
// umpire entry — the reserve or TV umpire — is discarded. Remaining
// duplicate (match, key) pairs keep their first occurrence.
func PivotMatchMetadata(long *frame.Frame) (*frame.Frame, error) {
	for _, name := range []string{"match_id", "key", "value"} {
		if !long.Has(name) {
			return nil, &frame.SchemaError{Column: name}
		}
	}

	matchID := long.Col("match_id")
	keyCol := long.Col("key")
	valueCol := long.Col("value")

	var matchOrder []string
	perMatch := make(map[string]map[string]string)
	occurrences := make(map[string]int)
	var extraKeyOrder []string
	seenKey := make(map[string]bool)
	for _, k := range metadataOrder {
		seenKey[k] = true
	}

	for i := 0; i < long.Len(); i++ {
		if matchID.IsNull(i) || keyCol.IsNull(i) {
			continue
		}
		match := matchID.Format(i)
		key := keyCol.Str(i)
		if playerKeys[key] {
			continue
		}

		row := perMatch[match]
		if row == nil {
			row = make(map[string]string)
			perMatch[match] = row
			matchOrder = append(matchOrder, match)
		}

		if key == "team" || key == "umpire" {
			occKey := match + "|" + key
			occurrences[occKey]++
			n := occurrences[occKey]
			if key == "umpire" && n >= 3 {
				continue
			}
			key = fmt.Sprintf("%s%d", key, n)
		}

		if _, dup := row[key]; dup {
			continue
		}
		value := ""
		if !valueCol.IsNull(i) {
			value = valueCol.Str(i)
		}
		row[key] = value

		if !seenKey[key] {
			seenKey[key] = true
			extraKeyOrder = append(extraKeyOrder, key)
		}
	}

	columns := make([]string, 0, len(metadataOrder)+len(extraKeyOrder))
	columns = append(columns, metadataOrder...)
	columns = append(columns, extraKeyOrder...)

	out := frame.New()
	out.Set("match_id", frame.NewStrings(matchOrder))
	for _, key := range columns {
		if key == "match_id" {
			continue
		}
		vals := make([]string, len(matchOrder))
		valid := make([]bool, len(matchOrder))
		present := false
		for i, match := range matchOrder {
			if v, ok := perMatch[match][key]; ok {
				vals[i] = v
				valid[i] = true
				present = true
			}
		}
		if present {
			out.Set(key, frame.NewStringsValid(vals, valid))
		}
	}

	// Cricsheet match IDs are usually all digits; they stay text so the
	// storage layer can key on them.
	if err := frame.CoerceExcept(out, "match_id"); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractPlayers keeps only squad-listing rows and returns them as
// (match_id, team, player) records.
func ExtractPlayers(long *frame.Frame) (*frame.Frame, error) {
	for _, name := range []string{"match_id", "key", "value", "player"} {
		if !long.Has(name) {
			return nil, &frame.SchemaError{Column: name}
		}
	}

	matchID := long.Col("match_id")
	keyCol := long.Col("key")
	valueCol := long.Col("value")
	playerCol := long.Col("player")

	var matches, teams, players []string
	for i := 0; i < long.Len(); i++ {
		if keyCol.IsNull(i) {
			continue
		}
		key := keyCol.Str(i)
		if key != "player" && key != "players" {
			continue
		}
		matches = append(matches, matchID.Format(i))
		team := ""
		if !valueCol.IsNull(i) {
			team = valueCol.Str(i)
		}
		teams = append(teams, team)
		name := ""
		if !playerCol.IsNull(i) {
			name = playerCol.Str(i)
		}
		players = append(players, name)
	}

	out := frame.New()
	out.Set("match_id", frame.NewStrings(matches))
	out.Set("team", frame.NewStrings(teams))
	out.Set("player", frame.NewStrings(players))
	return out, nil
}
