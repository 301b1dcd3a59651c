package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/concurrency"
	"github.com/osse101/CyberClicker_Go/internal/logger"
)

// memoryBackend keeps cooldowns in process memory. Used with the file storage backend.
type memoryBackend struct {
	config Config
	locks  *concurrency.LockManager

	mu      sync.RWMutex
	readyAt map[string]time.Time
}

// NewMemoryService creates a cooldown service that forgets everything on restart
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		config:  config,
		locks:   concurrency.NewLockManager(),
		readyAt: make(map[string]time.Time),
	}
}

func memoryKey(playerID, action string) string {
	return playerID + HashSeparator + action
}

func (b *memoryBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	readyAt, _ := b.GetReadyAt(ctx, playerID, action)
	onCooldown, left := remaining(b.config.now(), readyAt)
	return onCooldown, left, nil
}

func (b *memoryBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	key := memoryKey(playerID, action)
	return b.locks.WithLock(key, func() error {
		onCooldown, left, _ := b.CheckCooldown(ctx, playerID, action)
		if onCooldown {
			return ErrOnCooldown{Action: action, Remaining: left}
		}
		if b.config.DevMode {
			logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "player_id", playerID)
		}

		if err := fn(); err != nil {
			return err
		}

		b.mu.Lock()
		b.readyAt[key] = b.config.now().Add(b.config.Duration(action))
		b.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgCooldownEnforced, "action", action, "player_id", playerID)
		return nil
	})
}

func (b *memoryBackend) ResetCooldown(_ context.Context, playerID, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.readyAt, memoryKey(playerID, action))
	return nil
}

func (b *memoryBackend) GetReadyAt(_ context.Context, playerID, action string) (*time.Time, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.readyAt[memoryKey(playerID, action)]
	if !ok || !b.config.now().Before(t) {
		return nil, nil
	}
	return &t, nil
}
