package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "ci" {
		t.Fatalf("expected App.Env to default to ci, got %q", cfg.App.Env)
	}
	if !cfg.App.IsCI() {
		t.Fatalf("expected IsCI for default env")
	}
	if cfg.Store.Path != ":memory:" {
		t.Fatalf("expected in-memory store path, got %q", cfg.Store.Path)
	}
	if cfg.Store.Engine != "sqlite" {
		t.Fatalf("expected sqlite engine, got %q", cfg.Store.Engine)
	}
	if cfg.Store.BusyTimeout != 5*time.Second {
		t.Fatalf("expected 5s busy timeout, got %v", cfg.Store.BusyTimeout)
	}
	if cfg.Retention.LogDaysToKeep != 90 {
		t.Fatalf("expected 90 day log retention, got %d", cfg.Retention.LogDaysToKeep)
	}
	if cfg.Gateway.SuccessRate != 0.95 {
		t.Fatalf("expected 0.95 success rate, got %v", cfg.Gateway.SuccessRate)
	}
	if cfg.Token.Iterations != 100000 {
		t.Fatalf("expected 100000 pbkdf2 iterations, got %d", cfg.Token.Iterations)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAYTEST_APP_ENV", "dev")
	t.Setenv("PAYTEST_STORE_PATH", "/tmp/paytest.db")
	t.Setenv("PAYTEST_RETENTION_LOG_DAYS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected IsDev after override, got %q", cfg.App.Env)
	}
	if cfg.Store.Path != "/tmp/paytest.db" {
		t.Fatalf("unexpected store path %q", cfg.Store.Path)
	}
	if cfg.Retention.LogDaysToKeep != 30 {
		t.Fatalf("expected 30 day retention, got %d", cfg.Retention.LogDaysToKeep)
	}
}
