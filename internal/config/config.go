package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string // empty means stderr in plain mode, discarded in TUI mode
	Mode        string // ModeTUI or ModePlain
	Seed        uint64 // 0 means unseeded dice
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("LOG_FILE", ""),
		Mode:        parseMode(getEnv("CONSOLE_MODE", ModeTUI)),
		Seed:        parseSeed(getEnv("DICE_SEED", "")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModePlain, "line", "text":
		return ModePlain
	default:
		return ModeTUI
	}
}

// parseSeed returns 0 for anything that is not a positive integer.
func parseSeed(s string) uint64 {
	if s == "" {
		return 0
	}
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
