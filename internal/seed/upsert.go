package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cricbase/cricbase-data/internal/frame"
)

// --------------------------------------------------------------------------
// Player statistics — one jsonb blob per (dataset, player)
// --------------------------------------------------------------------------

// UpsertPlayer inserts or refreshes a player profile row. Country may
// be empty when the source table carried no annotation.
func UpsertPlayer(ctx context.Context, pool *pgxpool.Pool, name, country string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO players (name, country, updated_at)
		VALUES ($1, NULLIF($2, ''), now())
		ON CONFLICT (name) DO UPDATE SET
			country = COALESCE(NULLIF(EXCLUDED.country, ''), players.country),
			updated_at = now()`,
		name, country,
	)
	if err != nil {
		return fmt.Errorf("upsert player %q: %w", name, err)
	}
	return nil
}

// UpsertPlayerStats writes one cleaned stats row keyed by dataset and
// player. Everything beyond the key columns travels in a jsonb map, so
// schema drift in the scraped tables never needs a migration.
func UpsertPlayerStats(ctx context.Context, pool *pgxpool.Pool, matchType, sex, activity, view, player, country string, stats map[string]interface{}) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO player_stats (match_type, sex, activity, view, player, country, stats, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, now())
		ON CONFLICT (match_type, sex, activity, view, player) DO UPDATE SET
			country = COALESCE(NULLIF(EXCLUDED.country, ''), player_stats.country),
			stats = EXCLUDED.stats,
			updated_at = now()`,
		matchType, sex, activity, view, player, country, stats,
	)
	if err != nil {
		return fmt.Errorf("upsert stats for %q: %w", player, err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Matches — pivoted metadata, one row per match
// --------------------------------------------------------------------------

// UpsertMatch writes one pivoted metadata row. The well-known columns
// get their own fields for indexing; the full row is kept as jsonb.
func UpsertMatch(ctx context.Context, pool *pgxpool.Pool, row map[string]interface{}) error {
	matchID, _ := row["match_id"].(string)
	if matchID == "" {
		return fmt.Errorf("metadata row has no match_id")
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO matches (match_id, team1, team2, gender, season, start_date, venue, metadata, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (match_id) DO UPDATE SET
			team1 = EXCLUDED.team1,
			team2 = EXCLUDED.team2,
			gender = EXCLUDED.gender,
			season = EXCLUDED.season,
			start_date = EXCLUDED.start_date,
			venue = EXCLUDED.venue,
			metadata = EXCLUDED.metadata,
			updated_at = now()`,
		matchID, row["team1"], row["team2"], row["gender"],
		textOf(row["season"]), row["date"], row["venue"], row,
	)
	if err != nil {
		return fmt.Errorf("upsert match %q: %w", matchID, err)
	}
	return nil
}

// UpsertMatchPlayers replaces the squad listing for one match.
func UpsertMatchPlayers(ctx context.Context, pool *pgxpool.Pool, matchID string, teams, players []string) (int, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM match_players WHERE match_id = $1", matchID); err != nil {
		return 0, fmt.Errorf("clear squads for %q: %w", matchID, err)
	}

	rows := make([][]interface{}, len(players))
	for i := range players {
		rows[i] = []interface{}{matchID, teams[i], players[i]}
	}
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"match_players"},
		[]string{"match_id", "team", "player"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy squads for %q: %w", matchID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return int(n), nil
}

// --------------------------------------------------------------------------
// Deliveries — bulk replace via COPY
// --------------------------------------------------------------------------

// deliveryKeyColumns get dedicated table columns; the rest of each
// reshaped row rides along as jsonb.
var deliveryKeyColumns = []string{
	"match_id", "innings", "over", "ball",
	"batting_team", "bowling_team", "striker", "non_striker", "bowler",
}

// ReplaceDeliveries deletes every delivery row for the matches present
// in the frame and bulk-inserts the reshaped rows with COPY. Row counts
// here run to the hundreds of thousands, so per-row upserts are not an
// option.
func ReplaceDeliveries(ctx context.Context, pool *pgxpool.Pool, deliveries *frame.Frame) (int, error) {
	matchCol := deliveries.Col("match_id")
	if matchCol == nil {
		return 0, fmt.Errorf("deliveries frame has no match_id column")
	}

	seen := make(map[string]bool)
	var matchIDs []string
	for i := 0; i < deliveries.Len(); i++ {
		id := matchCol.Format(i)
		if !seen[id] {
			seen[id] = true
			matchIDs = append(matchIDs, id)
		}
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM deliveries WHERE match_id = ANY($1)", matchIDs); err != nil {
		return 0, fmt.Errorf("clear deliveries: %w", err)
	}

	keyed := make(map[string]bool, len(deliveryKeyColumns))
	for _, name := range deliveryKeyColumns {
		keyed[name] = true
	}

	rows := make([][]interface{}, deliveries.Len())
	for i := 0; i < deliveries.Len(); i++ {
		full := deliveries.RowMap(i)
		rest := make(map[string]interface{}, len(full))
		for name, v := range full {
			if !keyed[name] {
				rest[name] = v
			}
		}
		row := make([]interface{}, 0, len(deliveryKeyColumns)+1)
		for _, name := range deliveryKeyColumns {
			row = append(row, full[name])
		}
		rows[i] = append(row, rest)
	}

	columns := append(append([]string{}, deliveryKeyColumns...), "delivery")
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"deliveries"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy deliveries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return int(n), nil
}

// textOf renders a jsonb-bound value as text for columns that are
// plain text in the schema but numeric in some source files (seasons
// like 2021 vs "2020/21").
func textOf(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return fmt.Sprintf("%v", v)
}
