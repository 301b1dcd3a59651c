package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validate checks that the loaded values are usable together
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}

	switch c.StorageBackend {
	case BackendFile:
		if c.DataDir == "" {
			problems = append(problems, "DATA_DIR is required for the file backend")
		}
	case BackendPostgres:
		for name, v := range map[string]string{
			"DB_USER": c.DBUser,
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_NAME": c.DBName,
		} {
			if v == "" {
				problems = append(problems, name+" is required for the postgres backend")
			}
		}
		if c.DBMaxConns < 1 {
			problems = append(problems, "DB_MAX_CONNS must be positive")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			problems = append(problems, "REDIS_ADDR is required for the redis backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}

	if c.SessionCacheSize < 1 {
		problems = append(problems, "SESSION_CACHE_SIZE must be positive")
	}
	if c.AutosaveInterval <= 0 || c.AntiEffectCheckInterval <= 0 {
		problems = append(problems, "timer intervals must be positive")
	}

	if len(problems) > 0 {
		// map iteration order is random
		sort.Strings(problems)
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - API key authentication is disabled")
	}
	if c.StorageBackend == BackendPostgres && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is using the default value")
	}
	return warnings
}
