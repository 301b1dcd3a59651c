package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/config"
	"github.com/osse101/CyberClicker_Go/internal/cooldown"
	"github.com/osse101/CyberClicker_Go/internal/database"
	"github.com/osse101/CyberClicker_Go/internal/database/filestore"
	"github.com/osse101/CyberClicker_Go/internal/database/postgres"
	"github.com/osse101/CyberClicker_Go/internal/database/redisdb"
	"github.com/osse101/CyberClicker_Go/internal/handler"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// Backend holds the storage implementations chosen by STORAGE_BACKEND
type Backend struct {
	Name        string
	Snapshots   repository.Snapshots
	Leaderboard repository.Leaderboard
	Cooldowns   cooldown.Service
	// Pinger backs /readyz; nil means always ready
	Pinger handler.Pinger
	close  func()
}

// Close releases the backend's connections
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// OpenBackend connects the configured storage backend. Postgres is migrated before use.
func OpenBackend(ctx context.Context, cfg *config.Config, clk clock.Clock) (*Backend, error) {
	cdCfg := cooldown.DefaultConfig()
	cdCfg.Clock = clk

	ctx, cancel := context.WithTimeout(ctx, BackendConnectTimeout)
	defer cancel()

	var b *Backend
	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		b = &Backend{
			Snapshots:   store,
			Leaderboard: store,
			Cooldowns:   cooldown.NewMemoryService(cdCfg),
		}

	case config.BackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		b = &Backend{
			Snapshots:   postgres.NewSnapshotRepository(pool),
			Leaderboard: postgres.NewLeaderboardRepository(pool),
			Cooldowns:   cooldown.NewPostgresService(pool, cdCfg),
			Pinger:      pool,
			close:       pool.Close,
		}

	case config.BackendRedis:
		rdb, err := redisdb.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		b = &Backend{
			Snapshots:   redisdb.NewSnapshotRepository(rdb),
			Leaderboard: redisdb.NewLeaderboardRepository(rdb),
			Cooldowns:   cooldown.NewRedisService(rdb, cdCfg),
			Pinger: handler.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
			close: func() {
				if err := rdb.Close(); err != nil {
					slog.Warn("Failed to close redis client", "error", err)
				}
			},
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	b.Name = cfg.StorageBackend
	slog.Info(LogMsgBackendReady, "backend", b.Name)
	return b, nil
}
