// Package redisdb implements the repositories on Redis.
package redisdb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

// Keys
const (
	KeyLeaderboardRank  = "leaderboard:rank"
	KeyLeaderboardEntry = "leaderboard:entry:"
)

// NewClient connects and pings a Redis server
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	slog.Default().Info("Successfully connected to redis", "addr", addr, "db", db)
	return rdb, nil
}
