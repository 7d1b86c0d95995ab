// Command ingest is the Cricbase data ingestion CLI.
//
// Usage:
//
//	cricbase-ingest fetch --matchtype odi --sex men --activity batting --view career --out batting.csv
//	cricbase-ingest seed cricinfo --matchtype t20 --sex women --activity bowling --view innings
//	cricbase-ingest seed cricsheet --competition t20s --gender male
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cricbase/cricbase-data/internal/config"
	"github.com/cricbase/cricbase-data/internal/cricclean"
	"github.com/cricbase/cricbase-data/internal/cricsheet"
	"github.com/cricbase/cricbase-data/internal/db"
	"github.com/cricbase/cricbase-data/internal/provider/cricinfo"
	"github.com/cricbase/cricbase-data/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "cricbase-ingest",
		Short: "Cricbase data ingestion CLI",
	}

	root.AddCommand(fetchCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// statsguruFlags holds the dataset selector shared by fetch and seed.
type statsguruFlags struct {
	matchType string
	sex       string
	activity  string
	view      string
	country   string
}

func (f *statsguruFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.matchType, "matchtype", "", "Match type (test, odi, t20)")
	cmd.Flags().StringVar(&f.sex, "sex", "", "Sex (men, women)")
	cmd.Flags().StringVar(&f.activity, "activity", "", "Activity (batting, bowling, fielding)")
	cmd.Flags().StringVar(&f.view, "view", "career", "View (career, innings)")
	cmd.Flags().StringVar(&f.country, "country", "", "Optional country filter (fuzzy matched)")
	cmd.MarkFlagRequired("matchtype")
	cmd.MarkFlagRequired("sex")
	cmd.MarkFlagRequired("activity")
}

func (f *statsguruFlags) params() cricinfo.Params {
	return cricinfo.Params{
		MatchType: f.matchType,
		Sex:       f.sex,
		Activity:  cricclean.Activity(f.activity),
		View:      cricclean.View(f.view),
		Country:   f.country,
	}
}

// cricinfoClient builds a scraping client honoring the optional
// CRICINFO_* environment overrides without requiring a full config.
func cricinfoClient() *cricinfo.Client {
	var opts []cricinfo.ClientOption
	if v := os.Getenv("CRICINFO_BASE_URL"); v != "" {
		opts = append(opts, cricinfo.WithBaseURL(v))
	}
	if v := os.Getenv("CRICINFO_USER_AGENT"); v != "" {
		opts = append(opts, cricinfo.WithUserAgent(v))
	}
	return cricinfo.NewClient(logger, opts...)
}

// --------------------------------------------------------------------------
// fetch command — scrape and clean to CSV, no database needed
// --------------------------------------------------------------------------

func fetchCmd() *cobra.Command {
	var flags statsguruFlags
	var out string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Scrape one Statsguru dataset, clean it, and write CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			params := flags.params()
			start := time.Now()
			raw, err := cricinfoClient().Fetch(ctx, params)
			if err != nil {
				return err
			}

			activity, err := cricclean.ParseActivity(flags.activity)
			if err != nil {
				return err
			}
			cleaned, view, err := cricclean.Clean(raw, activity)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := cleaned.WriteCSV(w); err != nil {
				return fmt.Errorf("write CSV: %w", err)
			}

			logger.Info("Fetch finished",
				"rows", cleaned.Len(), "view", view,
				"duration", time.Since(start).Round(time.Second))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database from external sources",
	}
	cmd.AddCommand(seedCricinfoCmd())
	cmd.AddCommand(seedCricsheetCmd())
	return cmd
}

func seedCricinfoCmd() *cobra.Command {
	var flags statsguruFlags
	cmd := &cobra.Command{
		Use:   "cricinfo",
		Short: "Scrape one Statsguru dataset and upsert player stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				var opts []cricinfo.ClientOption
				if cfg.CricinfoBaseURL != "" {
					opts = append(opts, cricinfo.WithBaseURL(cfg.CricinfoBaseURL))
				}
				if cfg.CricinfoUserAgent != "" {
					opts = append(opts, cricinfo.WithUserAgent(cfg.CricinfoUserAgent))
				}
				opts = append(opts, cricinfo.WithRequestsPerMinute(cfg.CricinfoRequestsPerMinute))
				client := cricinfo.NewClient(logger, opts...)

				start := time.Now()
				result := seed.SeedCricinfo(ctx, pool.Pool, client, flags.params(), logger)
				logger.Info("Cricinfo seed finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("seed error", "error", e)
				}
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func seedCricsheetCmd() *cobra.Command {
	var competition, gender string
	cmd := &cobra.Command{
		Use:   "cricsheet",
		Short: "Download a cricsheet archive and load matches, deliveries, and squads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				client := cricsheet.NewFetchClient(cfg.CricsheetBaseURL, logger)

				start := time.Now()
				result := seed.SeedCricsheet(ctx, pool.Pool, client, competition, gender, logger)
				logger.Info("Cricsheet seed finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("seed error", "error", e)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&competition, "competition", "", "Cricsheet competition slug (e.g. t20s, odis, tests, ipl)")
	cmd.Flags().StringVar(&gender, "gender", "male", "Gender (male, female)")
	cmd.MarkFlagRequired("competition")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runSeed handles config loading, DB connection, and context cancellation.
func runSeed(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
