package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Content ContentConfig
	Engine  EngineConfig
	Lint    LintConfig
}

// ContentConfig selects the rules-content source
type ContentConfig struct {
	// Source names the content backend. Only "builtin" is supported today.
	Source string
}

// EngineConfig holds recalculation engine configuration
type EngineConfig struct {
	// BonusLanguages overrides the built-in bonus language pool when set
	BonusLanguages []string
}

// LintConfig holds content lint configuration
type LintConfig struct {
	// Strict makes warnings fail the lint run
	Strict bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Content: ContentConfig{
			Source: getEnvOrDefault("PF2_CONTENT_SOURCE", "builtin"),
		},
		Engine: EngineConfig{
			BonusLanguages: getEnvAsList("PF2_BONUS_LANGUAGES"),
		},
		Lint: LintConfig{
			Strict: getEnvAsBoolOrDefault("PF2_LINT_STRICT", false),
		},
	}

	if cfg.Content.Source != "builtin" {
		return nil, fmt.Errorf("unsupported content source %q", cfg.Content.Source)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
