package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"DIVYANG_DB_PATH", "DIVYANG_LOG_LEVEL", "DIVYANG_RESET_INTERVAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level=%q, want warn", cfg.LogLevel)
	}
	if cfg.ResetInterval != time.Minute {
		t.Fatalf("reset interval=%s, want 1m", cfg.ResetInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DIVYANG_DB_PATH", "/tmp/x.db")
	t.Setenv("DIVYANG_RESET_INTERVAL", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.ResetInterval != 5*time.Second {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DIVYANG_RESET_INTERVAL", "soon")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err=%v, want parse env error", err)
	}
}
