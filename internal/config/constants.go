package config

import "time"

// Storage backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Defaults
const (
	DefaultPort                    = 8080
	DefaultLogLevel                = "INFO"
	DefaultLogFormat               = "text"
	DefaultLogDir                  = "logs"
	DefaultEnvironment             = "dev"
	DefaultVersion                 = "dev"
	DefaultDataDir                 = "data"
	DefaultDBMaxConns              = 10
	DefaultSessionCacheSize        = 1000
	DefaultAutosaveInterval        = 60 * time.Second
	DefaultAntiEffectCheckInterval = 30 * time.Second
	DefaultLeaderboardCacheTTL     = 30 * time.Second
)
