package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DatabaseURL   string
	RedisAddr     string
	TMDBAPIKey    string
	TMDBLanguage  string
	TMDBRegion    string
	SyncEnabled   bool
	SyncInterval  time.Duration
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:          envInt("PORT", 8080),
		DatabaseURL:   env("DATABASE_URL", ""),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		TMDBAPIKey:    env("TMDB_API_KEY", ""),
		TMDBLanguage:  env("TMDB_LANGUAGE", "en"),
		TMDBRegion:    env("TMDB_REGION", "US"),
		SyncEnabled:   env("SYNC_ENABLED", "true") != "false",
		SyncInterval:  envDuration("SYNC_INTERVAL", 6*time.Hour),
		AdminPassword: env("ADMIN_PASSWORD", ""),
	}
}

// Validate checks the credentials the pipeline cannot run without. A missing
// credential is a startup failure, never a per-item error.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	return nil
}

// ApplyOverrides merges runtime-editable settings from the settings table
// over the env-derived values.
func (c *Config) ApplyOverrides(db *sql.DB) {
	rows, err := db.Query("SELECT key, value FROM settings")
	if err != nil {
		log.Printf("config: skipping settings overlay: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			continue
		}
		switch key {
		case "sync_language":
			c.TMDBLanguage = value
		case "sync_region":
			c.TMDBRegion = value
		case "sync_enabled":
			c.SyncEnabled = value != "false"
		case "sync_interval":
			if d, err := time.ParseDuration(value); err == nil && d > 0 {
				c.SyncInterval = d
			}
		}
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
