package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalYAML = `
sql:
  dsn: "host=localhost user=postgres dbname=realestate"
database:
  uri: "mongodb://localhost:27017"
  dbname: "realestate"
`

func TestParseAppliesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SQL_DRIVER", "")
	t.Setenv("REDIS_HOST", "")

	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.SQL.Driver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.SQL.Driver)
	}
	if cfg.Database.Collection != "property_details" {
		t.Errorf("collection = %q", cfg.Database.Collection)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != 6379 {
		t.Errorf("redis = %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	}
	if cfg.Reconciler.StaleAfter != 5*time.Minute {
		t.Errorf("stale_after = %v", cfg.Reconciler.StaleAfter)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SQL_DRIVER", "mysql")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.SQL.Driver != "mysql" || cfg.Redis.Port != 6380 || cfg.JWT.Secret != "s3cret" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_PORT", "not-a-number")
	if _, err := Parse([]byte(minimalYAML)); err == nil {
		t.Fatal("expected error for invalid REDIS_PORT")
	}

	t.Setenv("REDIS_PORT", "")
	t.Setenv("SQL_DRIVER", "oracle")
	if _, err := Parse([]byte(minimalYAML)); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestParseRequiresStores(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_URI", "")
	if _, err := Parse([]byte("server:\n  port: 8080\n")); err == nil {
		t.Fatal("expected validation error without store settings")
	}
}

func TestLoadConfigReadsDurations(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := minimalYAML + "reconciler:\n  interval: 30s\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Reconciler.Interval != 30*time.Second {
		t.Fatalf("interval = %v, want 30s", cfg.Reconciler.Interval)
	}
}

func TestParseRejectsWindowsShorterThanAWrite(t *testing.T) {
	t.Setenv("PORT", "")
	tests := []struct {
		name string
		body string
	}{
		{"stale_after", "server:\n  operation_timeout: 10s\nreconciler:\n  stale_after: 1ms\n"},
		{"stale_after at the bound", "server:\n  operation_timeout: 10s\nreconciler:\n  stale_after: 20s\n"},
		{"lock_ttl", "server:\n  operation_timeout: 10s\nredis:\n  lock_ttl: 15s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(minimalYAML + tt.body)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestParseDerivesLockTTLFromOperationTimeout(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Parse([]byte(minimalYAML + "server:\n  operation_timeout: 2m\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Redis.LockTTL != 6*time.Minute {
		t.Errorf("lock_ttl = %v, want 6m", cfg.Redis.LockTTL)
	}
	if cfg.Reconciler.StaleAfter != 6*time.Minute {
		t.Errorf("stale_after = %v, want 6m", cfg.Reconciler.StaleAfter)
	}
}
