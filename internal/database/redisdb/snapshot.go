package redisdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// SnapshotRepository stores each saved game under its own string key
type SnapshotRepository struct {
	rdb *redis.Client
}

var _ repository.Snapshots = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(rdb *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{rdb: rdb}
}

// Get reads a saved game
func (r *SnapshotRepository) Get(ctx context.Context, playerID string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, repository.SnapshotKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return data, nil
}

// Put writes a saved game without expiry
func (r *SnapshotRepository) Put(ctx context.Context, playerID string, data []byte) error {
	if err := r.rdb.Set(ctx, repository.SnapshotKey(playerID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}
	return nil
}

// Delete removes a saved game
func (r *SnapshotRepository) Delete(ctx context.Context, playerID string) error {
	if err := r.rdb.Del(ctx, repository.SnapshotKey(playerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
