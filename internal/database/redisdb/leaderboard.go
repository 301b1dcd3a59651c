package redisdb

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// LeaderboardRepository ranks names in a sorted set and keeps each entry in a hash
type LeaderboardRepository struct {
	rdb *redis.Client
}

var _ repository.Leaderboard = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(rdb *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{rdb: rdb}
}

// entryHash is the hash layout; HGETALL returns every field as a string
type entryHash struct {
	Name      string  `mapstructure:"name"`
	Score     float64 `mapstructure:"score"`
	Prestige  int     `mapstructure:"prestige"`
	UpdatedAt int64   `mapstructure:"updatedAt"`
}

// Upsert merges the entry and evicts whatever falls beyond capacity
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	key := KeyLeaderboardEntry + entry.Name

	existing, found, err := r.read(ctx, key)
	if err != nil {
		return err
	}
	if found {
		entry = repository.Merge(existing, entry)
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"name":      entry.Name,
			"score":     entry.Score,
			"prestige":  entry.Prestige,
			"updatedAt": entry.UpdatedAt.UnixMilli(),
		})
		pipe.ZAdd(ctx, KeyLeaderboardRank, &redis.Z{Score: entry.Score, Member: entry.Name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert leaderboard entry: %w", err)
	}
	return r.trim(ctx)
}

// Top returns the best entries
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	entries, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	if limit = repository.ClampLimit(limit); len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// all loads every ranked entry in leaderboard order
func (r *LeaderboardRepository) all(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	names, err := r.rdb.ZRevRange(ctx, KeyLeaderboardRank, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(names))
	for _, name := range names {
		e, found, err := r.read(ctx, KeyLeaderboardEntry+name)
		if err != nil {
			return nil, err
		}
		if found {
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b domain.LeaderboardEntry) int {
		switch {
		case repository.Less(a, b):
			return -1
		case repository.Less(b, a):
			return 1
		default:
			return 0
		}
	})
	return entries, nil
}

func (r *LeaderboardRepository) trim(ctx context.Context) error {
	count, err := r.rdb.ZCard(ctx, KeyLeaderboardRank).Result()
	if err != nil {
		return fmt.Errorf("failed to count leaderboard: %w", err)
	}
	if count <= repository.LeaderboardCapacity {
		return nil
	}

	entries, err := r.all(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries[repository.LeaderboardCapacity:] {
		if err := r.rdb.ZRem(ctx, KeyLeaderboardRank, e.Name).Err(); err != nil {
			return fmt.Errorf("failed to trim leaderboard: %w", err)
		}
		if err := r.rdb.Del(ctx, KeyLeaderboardEntry+e.Name).Err(); err != nil {
			return fmt.Errorf("failed to trim leaderboard: %w", err)
		}
	}
	return nil
}

func (r *LeaderboardRepository) read(ctx context.Context, key string) (domain.LeaderboardEntry, bool, error) {
	fields, err := r.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return domain.LeaderboardEntry{}, false, fmt.Errorf("failed to read leaderboard entry: %w", err)
	}
	if len(fields) == 0 {
		return domain.LeaderboardEntry{}, false, nil
	}

	var h entryHash
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &h,
	})
	if err != nil {
		return domain.LeaderboardEntry{}, false, err
	}
	if err := decoder.Decode(fields); err != nil {
		return domain.LeaderboardEntry{}, false, fmt.Errorf("failed to decode leaderboard entry: %w", err)
	}
	return domain.LeaderboardEntry{
		Name:      h.Name,
		Score:     h.Score,
		Prestige:  h.Prestige,
		UpdatedAt: time.UnixMilli(h.UpdatedAt).UTC(),
	}, true, nil
}
