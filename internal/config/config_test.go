package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("CONSOLE_MODE", "")
	t.Setenv("DICE_SEED", "")

	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelInfo)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.Mode != ModeTUI {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeTUI)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/sim.log")
	t.Setenv("CONSOLE_MODE", "plain")
	t.Setenv("DICE_SEED", "42")

	cfg := Load()

	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "production")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelDebug)
	}
	if cfg.LogFile != "/tmp/sim.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/tmp/sim.log")
	}
	if cfg.Mode != ModePlain {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModePlain)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLogLevel(tt.in); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]string{
		"plain":  ModePlain,
		" Line ": ModePlain,
		"text":   ModePlain,
		"tui":    ModeTUI,
		"fancy":  ModeTUI,
		"":       ModeTUI,
	}
	for in, want := range tests {
		if got := parseMode(in); got != want {
			t.Errorf("parseMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseSeed(t *testing.T) {
	tests := map[string]uint64{
		"":     0,
		"7":    7,
		" 99 ": 99,
		"-3":   0,
		"dice": 0,
	}
	for in, want := range tests {
		if got := parseSeed(in); got != want {
			t.Errorf("parseSeed(%q) = %d, want %d", in, got, want)
		}
	}
}
