// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cricbase/cricbase-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers all statements the API and ingestion
// layers use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// API: player stats by match type / sex / activity / view.
		// Postgres assembles the complete JSON; handlers pass raw bytes
		// through.
		"stats_by_activity": `SELECT jsonb_agg(
				jsonb_build_object('player', player, 'country', country) || stats
				ORDER BY player)
			FROM player_stats
			WHERE match_type = $1 AND sex = $2 AND activity = $3 AND view = $4`,

		// API: match metadata and scorecards
		"match_by_id": "SELECT metadata FROM matches WHERE match_id = $1",
		"deliveries_by_match": `SELECT jsonb_agg(
				jsonb_build_object(
					'innings', innings, 'over', over, 'ball', ball,
					'batting_team', batting_team, 'bowling_team', bowling_team,
					'striker', striker, 'non_striker', non_striker, 'bowler', bowler
				) || delivery
				ORDER BY innings, over, ball)
			FROM deliveries WHERE match_id = $1`,
		"players_by_match": `SELECT jsonb_agg(
				jsonb_build_object('team', team, 'player', player)
				ORDER BY team, player)
			FROM match_players WHERE match_id = $1`,

		// API: player lookup
		"player_lookup": "SELECT name, country FROM players WHERE name = $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
