package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected no database by default, got %s", cfg.DBPath)
	}
	if cfg.AssetBase != "/assets/" {
		t.Fatalf("expected /assets/, got %s", cfg.AssetBase)
	}
	if cfg.CacheSize != 8 {
		t.Fatalf("expected cache size 8, got %d", cfg.CacheSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/games.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:*,https://games.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/games.db" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	want := []string{"http://localhost:*", "https://games.example"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("CACHE_SIZE", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsZeroCache(t *testing.T) {
	t.Setenv("CACHE_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero cache size")
	}
}
