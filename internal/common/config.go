// Package common provides shared configuration and run statistics for
// the WSPR QSO log tools.
package common

import (
	"os"
	"strings"
)

// Config holds common configuration for all tools.
type Config struct {
	// ExcludedCalls are extra remote callsigns that must never be
	// logged, on top of the built-in exclusions.
	ExcludedCalls []string
	LogLevel      string
}

// DefaultConfig returns configuration populated from the environment
// with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ExcludedCalls: splitList(getEnv("WSPR_EXCLUDED_CALLS", "")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
