package seed

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cricbase/cricbase-data/internal/cricclean"
	"github.com/cricbase/cricbase-data/internal/cricsheet"
	"github.com/cricbase/cricbase-data/internal/frame"
	"github.com/cricbase/cricbase-data/internal/provider/cricinfo"
)

// SeedCricinfo scrapes one Statsguru dataset, cleans it, and upserts
// the player rows plus their stats blobs. One bad row is recorded and
// skipped; a failed fetch or clean aborts the whole dataset.
func SeedCricinfo(ctx context.Context, pool *pgxpool.Pool, client *cricinfo.Client, params cricinfo.Params, logger *slog.Logger) SeedResult {
	var result SeedResult

	// Dataset key columns are stored lowercase.
	matchType := strings.ToLower(params.MatchType)
	sex := strings.ToLower(params.Sex)

	raw, err := client.Fetch(ctx, params)
	if err != nil {
		result.AddErrorf("fetch statsguru %s/%s %s %s: %v",
			matchType, sex, params.Activity, params.View, err)
		return result
	}

	activity, err := cricclean.ParseActivity(string(params.Activity))
	if err != nil {
		result.AddErrorf("%v", err)
		return result
	}
	cleaned, view, err := cricclean.Clean(raw, activity)
	if err != nil {
		result.AddErrorf("clean %s table: %v", activity, err)
		return result
	}

	logger.Info("seeding player stats",
		"matchtype", matchType, "sex", sex,
		"activity", activity, "view", view, "rows", cleaned.Len())

	playerCol := cleaned.Col("player")
	countryCol := cleaned.Col("country")
	for i := 0; i < cleaned.Len(); i++ {
		if playerCol.IsNull(i) {
			continue
		}
		player := playerCol.Str(i)
		country := ""
		if countryCol != nil && !countryCol.IsNull(i) {
			country = countryCol.Str(i)
		}

		if err := UpsertPlayer(ctx, pool, player, country); err != nil {
			result.AddErrorf("%v", err)
		} else {
			result.PlayersUpserted++
		}

		stats := cleaned.RowMap(i)
		delete(stats, "player")
		delete(stats, "country")
		err := UpsertPlayerStats(ctx, pool,
			matchType, sex, string(activity), string(view),
			player, country, stats)
		if err != nil {
			result.AddErrorf("%v", err)
		} else {
			result.StatsUpserted++
		}

		if (i+1)%500 == 0 {
			logger.Info("player stats progress", "processed", i+1)
		}
	}

	logger.Info("player stats done", "summary", result.Summary())
	return result
}

// SeedCricsheet downloads one cricsheet archive and loads all three
// derived tables: pivoted match metadata, reshaped deliveries, and
// squad listings.
func SeedCricsheet(ctx context.Context, pool *pgxpool.Pool, client *cricsheet.FetchClient, competition, gender string, logger *slog.Logger) SeedResult {
	var result SeedResult

	arch, err := client.Fetch(ctx, competition, gender)
	if err != nil {
		result.AddErrorf("fetch cricsheet %s/%s: %v", competition, gender, err)
		return result
	}

	// 1. Match metadata
	meta, err := cricsheet.PivotMatchMetadata(arch.Info)
	if err != nil {
		result.AddErrorf("pivot match metadata: %v", err)
		return result
	}
	logger.Info("seeding matches", "count", meta.Len())
	for i := 0; i < meta.Len(); i++ {
		if err := UpsertMatch(ctx, pool, meta.RowMap(i)); err != nil {
			result.AddErrorf("%v", err)
		} else {
			result.MatchesUpserted++
		}
	}

	// 2. Deliveries
	deliveries, err := cricsheet.Reshape(arch.Deliveries)
	if err != nil {
		result.AddErrorf("reshape deliveries: %v", err)
		return result
	}
	logger.Info("seeding deliveries", "count", deliveries.Len())
	n, err := ReplaceDeliveries(ctx, pool, deliveries)
	if err != nil {
		result.AddErrorf("%v", err)
	} else {
		result.DeliveriesInserted = n
	}

	// 3. Squads
	squads, err := cricsheet.ExtractPlayers(arch.Info)
	if err != nil {
		result.AddErrorf("extract squads: %v", err)
		return result
	}
	result.Add(seedSquads(ctx, pool, squads, logger))

	logger.Info("cricsheet seed complete", "summary", result.Summary())
	return result
}

// seedSquads groups the flat (match, team, player) rows by match and
// replaces each match's listing in one transaction.
func seedSquads(ctx context.Context, pool *pgxpool.Pool, squads *frame.Frame, logger *slog.Logger) SeedResult {
	var result SeedResult

	matchCol := squads.Col("match_id")
	teamCol := squads.Col("team")
	playerCol := squads.Col("player")

	type squad struct {
		teams   []string
		players []string
	}
	var order []string
	byMatch := make(map[string]*squad)
	for i := 0; i < squads.Len(); i++ {
		id := matchCol.Str(i)
		s := byMatch[id]
		if s == nil {
			s = &squad{}
			byMatch[id] = s
			order = append(order, id)
		}
		s.teams = append(s.teams, teamCol.Str(i))
		s.players = append(s.players, playerCol.Str(i))
	}

	logger.Info("seeding squads", "matches", len(order))
	for _, id := range order {
		s := byMatch[id]
		n, err := UpsertMatchPlayers(ctx, pool, id, s.teams, s.players)
		if err != nil {
			result.AddErrorf("%v", err)
			continue
		}
		result.SquadRowsUpserted += n
	}
	return result
}
