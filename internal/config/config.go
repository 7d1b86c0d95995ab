// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Competition registry — the match types and sexes we ingest
// --------------------------------------------------------------------------

type CompetitionConfig struct {
	ID        string
	Name      string
	MatchType string
	Sex       string
}

var CompetitionRegistry = map[string]CompetitionConfig{
	"TEST_MEN":   {ID: "TEST_MEN", Name: "Men's Test cricket", MatchType: "test", Sex: "men"},
	"ODI_MEN":    {ID: "ODI_MEN", Name: "Men's One Day Internationals", MatchType: "odi", Sex: "men"},
	"T20_MEN":    {ID: "T20_MEN", Name: "Men's T20 Internationals", MatchType: "t20", Sex: "men"},
	"TEST_WOMEN": {ID: "TEST_WOMEN", Name: "Women's Test cricket", MatchType: "test", Sex: "women"},
	"ODI_WOMEN":  {ID: "ODI_WOMEN", Name: "Women's One Day Internationals", MatchType: "odi", Sex: "women"},
	"T20_WOMEN":  {ID: "T20_WOMEN", Name: "Women's T20 Internationals", MatchType: "t20", Sex: "women"},
}

// --------------------------------------------------------------------------
// Table names — single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	PlayersTable      = "players"
	PlayerStatsTable  = "player_stats"
	MatchesTable      = "matches"
	DeliveriesTable   = "deliveries"
	MatchPlayersTable = "match_players"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound API)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Scraping sources
	CricinfoBaseURL           string
	CricinfoUserAgent         string
	CricinfoRequestsPerMinute int
	CricsheetBaseURL          string

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("NEON_DATABASE_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or NEON_DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CricinfoBaseURL:           envOr("CRICINFO_BASE_URL", ""),
		CricinfoUserAgent:         envOr("CRICINFO_USER_AGENT", ""),
		CricinfoRequestsPerMinute: envInt("CRICINFO_REQUESTS_PER_MINUTE", 30),
		CricsheetBaseURL:          envOr("CRICSHEET_BASE_URL", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
