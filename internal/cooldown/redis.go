package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/CyberClicker_Go/internal/logger"
)

// redisBackend stores each cooldown as a key holding the ready-at unix millis,
// expiring together with the cooldown
type redisBackend struct {
	rdb    *redis.Client
	config Config
}

// NewRedisService creates a cooldown service with Redis backend
func NewRedisService(rdb *redis.Client, config Config) Service {
	return &redisBackend{rdb: rdb, config: config}
}

func redisKey(playerID, action string) string {
	return RedisKeyPrefix + playerID + HashSeparator + action
}

func (b *redisBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	readyAt, err := b.GetReadyAt(ctx, playerID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}
	onCooldown, left := remaining(b.config.now(), readyAt)
	return onCooldown, left, nil
}

// EnforceCooldown takes a short SETNX lock so the recheck, fn and the update are not interleaved
func (b *redisBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, left, err := b.CheckCooldown(ctx, playerID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: left}
	}

	lockKey := RedisLockKeyPrefix + playerID + HashSeparator + action
	acquired, err := b.rdb.SetNX(ctx, lockKey, 1, RedisLockTTL).Result()
	if err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}
	if !acquired {
		return fmt.Errorf(ErrMsgAcquireLockFailed, errors.New(ErrMsgLockBusy))
	}
	defer b.rdb.Del(context.WithoutCancel(ctx), lockKey)

	if onCooldown, left, err := b.CheckCooldown(ctx, playerID, action); err != nil {
		return err
	} else if onCooldown {
		log.Debug(LogMsgRaceConditionDetected, "action", action, "player_id", playerID, "remaining", left)
		return ErrOnCooldown{Action: action, Remaining: left}
	}

	if err := fn(); err != nil {
		return err
	}

	d := b.config.Duration(action)
	if d <= 0 {
		return nil
	}
	readyAt := b.config.now().Add(d)
	if err := b.rdb.Set(ctx, redisKey(playerID, action), readyAt.UnixMilli(), d).Err(); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	log.Debug(LogMsgCooldownEnforced, "action", action, "player_id", playerID)
	return nil
}

func (b *redisBackend) ResetCooldown(ctx context.Context, playerID, action string) error {
	if err := b.rdb.Del(ctx, redisKey(playerID, action)).Err(); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

func (b *redisBackend) GetReadyAt(ctx context.Context, playerID, action string) (*time.Time, error) {
	millis, err := b.rdb.Get(ctx, redisKey(playerID, action)).Int64()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetReadyAtFailed, err)
	}
	readyAt := time.UnixMilli(millis)
	if onCooldown, _ := remaining(b.config.now(), &readyAt); !onCooldown {
		return nil, nil
	}
	return &readyAt, nil
}
