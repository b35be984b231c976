package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/filmlane")
	t.Setenv("TMDB_API_KEY", "key")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("default port: %d", cfg.Port)
	}
	if cfg.TMDBLanguage != "en" || cfg.TMDBRegion != "US" {
		t.Errorf("default language/region: %s/%s", cfg.TMDBLanguage, cfg.TMDBRegion)
	}
	if !cfg.SyncEnabled {
		t.Error("sync should default to enabled")
	}
	if cfg.SyncInterval != 6*time.Hour {
		t.Errorf("default interval: %s", cfg.SyncInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with credentials set: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TMDB_LANGUAGE", "ko")
	t.Setenv("TMDB_REGION", "KR")
	t.Setenv("SYNC_INTERVAL", "45m")
	t.Setenv("SYNC_ENABLED", "false")

	cfg := Load()
	if cfg.TMDBLanguage != "ko" || cfg.TMDBRegion != "KR" {
		t.Errorf("language/region: %s/%s", cfg.TMDBLanguage, cfg.TMDBRegion)
	}
	if cfg.SyncInterval != 45*time.Minute {
		t.Errorf("interval: %s", cfg.SyncInterval)
	}
	if cfg.SyncEnabled {
		t.Error("SYNC_ENABLED=false not honored")
	}
}

func TestValidateRequiresCredentials(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TMDB_API_KEY", "")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing DATABASE_URL must fail validation")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/filmlane")
	cfg = Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing TMDB_API_KEY must fail validation")
	}
}
