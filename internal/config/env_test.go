package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("log settings = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.TickInterval != time.Second {
		t.Fatalf("TickInterval = %v, want 1s", cfg.TickInterval)
	}
	if cfg.HistoryPath != "" {
		t.Fatalf("HistoryPath = %q, want empty", cfg.HistoryPath)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FOCUSDESK_LOG_LEVEL", "debug")
	t.Setenv("FOCUSDESK_HISTORY_PATH", "/tmp/history.db")
	t.Setenv("FOCUSDESK_TICK_INTERVAL", "250ms")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.HistoryPath != "/tmp/history.db" {
		t.Fatalf("HistoryPath = %q", cfg.HistoryPath)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("TickInterval = %v, want 250ms", cfg.TickInterval)
	}
}

func TestLoadEnvInvalidDuration(t *testing.T) {
	t.Setenv("FOCUSDESK_TICK_INTERVAL", "soon")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadEnvRejectsNonPositiveTick(t *testing.T) {
	t.Setenv("FOCUSDESK_TICK_INTERVAL", "0s")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected error for zero tick interval")
	}
}
