// Package seed provides database upsert orchestration for both data
// sources: Statsguru player statistics and cricsheet ball-by-ball
// archives.
package seed

import "fmt"

// SeedResult tracks counts and errors from a seeding operation.
type SeedResult struct {
	PlayersUpserted    int
	StatsUpserted      int
	MatchesUpserted    int
	DeliveriesInserted int
	SquadRowsUpserted  int
	Errors             []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.PlayersUpserted += other.PlayersUpserted
	r.StatsUpserted += other.StatsUpserted
	r.MatchesUpserted += other.MatchesUpserted
	r.DeliveriesInserted += other.DeliveriesInserted
	r.SquadRowsUpserted += other.SquadRowsUpserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddError records an error message.
func (r *SeedResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf(
		"players=%d stats=%d matches=%d deliveries=%d squad_rows=%d errors=%d",
		r.PlayersUpserted, r.StatsUpserted, r.MatchesUpserted,
		r.DeliveriesInserted, r.SquadRowsUpserted, len(r.Errors),
	)
}
