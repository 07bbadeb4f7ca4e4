package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_FeedRequiresKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_ENABLED", "true")
	t.Setenv("FEED_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FEED_ENABLED=true without FEED_API_KEY")
	}
}

func TestLoad_AssistantRequiresKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ASSISTANT_ENABLED", "true")
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ASSISTANT_ENABLED=true without OPENAI_API_KEY")
	}
}

func TestLoad_EmptyDBURLDisablesDatabase(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBURL != "" {
		t.Fatalf("explicit empty DB_URL must stay empty, got %q", cfg.DBURL)
	}
}

func TestLoad_UnsetDBURLUsesDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "placeholder") // register restore, then drop the key
	os.Unsetenv("DB_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBURL == "" {
		t.Fatalf("unset DB_URL must fall back to the localhost default")
	}
}

func TestLoad_FeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_ENABLED", "true")
	t.Setenv("FEED_API_KEY", "secret-key")
	t.Setenv("FEED_ACCESS_LEVEL", "production")
	t.Setenv("FEED_TIMEOUT", "5s")
	t.Setenv("FEED_FETCH_CONCURRENCY", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FeedEnabled || cfg.FeedAPIKey != "secret-key" {
		t.Fatalf("unexpected feed config: %+v", cfg)
	}
	if cfg.FeedAccessLevel != "production" {
		t.Fatalf("unexpected access level: %q", cfg.FeedAccessLevel)
	}
	if cfg.FeedTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.FeedTimeout)
	}
	if cfg.FeedFetchConcurrency != 8 {
		t.Fatalf("unexpected concurrency: %d", cfg.FeedFetchConcurrency)
	}
}

func TestLoad_SyncDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_YEAR", "2025")
	t.Setenv("SYNC_SEASON_TYPE", "reg")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SyncYear != 2025 {
		t.Fatalf("unexpected year: %d", cfg.SyncYear)
	}
	if cfg.SyncSeasonType != "REG" {
		t.Fatalf("season type not upper-cased: %q", cfg.SyncSeasonType)
	}
	if cfg.SyncRankingWeeks != nil {
		t.Fatalf("expected no ranking weeks by default, got %v", cfg.SyncRankingWeeks)
	}
}

func TestParseWeekList(t *testing.T) {
	got, err := parseWeekList("1, 3, 5-7")
	if err != nil {
		t.Fatalf("parse week list: %v", err)
	}
	want := []int{1, 3, 5, 6, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected weeks: got %v want %v", got, want)
	}

	if _, err := parseWeekList("7-3"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if _, err := parseWeekList("0"); err == nil {
		t.Fatalf("expected error for week below 1")
	}
}
