package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/CyberClicker_Go/internal/concurrency"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/logger"
	"github.com/osse101/CyberClicker_Go/internal/persistence"
)

// Manager keeps the most recently used sessions in memory. A session that
// falls out of the cache is saved and stopped.
type Manager struct {
	ctx  context.Context
	deps Deps
	opts Options

	cache   *lru.Cache[string, *Session]
	locks   *concurrency.LockManager
	closing sync.Map // player id -> *Session still writing its final save
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// NewManager creates a session manager holding at most size sessions
func NewManager(ctx context.Context, size int, deps Deps, opts Options) (*Manager, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	m := &Manager{
		ctx:   ctx,
		deps:  deps,
		opts:  opts,
		locks: concurrency.NewLockManager(),
	}
	cache, err := lru.NewWithEvict[string, *Session](size, m.onEvict)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	m.cache = cache
	return m, nil
}

func (m *Manager) onEvict(id string, s *Session) {
	trigger := persistence.TriggerEvicted
	if m.closed.Load() {
		trigger = persistence.TriggerShutdown
	} else {
		logger.FromContext(m.ctx).Debug(LogMsgSessionEvicted, "player_id", id)
	}

	m.closing.Store(id, s)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		_ = s.Close(m.ctx, trigger)
		m.closing.CompareAndDelete(id, s)
	}()
}

// Get returns the player's running session, restoring it from storage if needed
func (m *Manager) Get(ctx context.Context, playerID string) (*Session, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if m.closed.Load() {
		return nil, domain.ErrSessionClosed
	}
	if s, ok := m.cache.Get(playerID); ok && !s.Closed() {
		return s, nil
	}

	var out *Session
	err := m.locks.WithLock(playerID, func() error {
		if s, ok := m.cache.Get(playerID); ok && !s.Closed() {
			out = s
			return nil
		}
		// an evicted session must finish its save before the snapshot is read back
		if v, ok := m.closing.Load(playerID); ok {
			select {
			case <-v.(*Session).Done():
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		loaded := m.deps.Persistence.Load(ctx, playerID)
		s := newSession(m.ctx, playerID, loaded, m.deps, m.opts)
		s.start()
		m.cache.Add(playerID, s)
		out = s
		return nil
	})
	return out, err
}

// Len is the number of cached sessions
func (m *Manager) Len() int {
	return m.cache.Len()
}

// Shutdown saves and stops every session
func (m *Manager) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	m.closed.Store(true)
	m.cache.Purge()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
