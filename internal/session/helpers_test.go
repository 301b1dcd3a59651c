package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/cooldown"
	"github.com/osse101/CyberClicker_Go/internal/database/filestore"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/event"
	"github.com/osse101/CyberClicker_Go/internal/persistence"
	"github.com/osse101/CyberClicker_Go/internal/validation"
)

var epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// never keeps every random roll on the failing side
func never() float64 { return 0.99 }

type fixture struct {
	store   *filestore.Store
	persist persistence.Service
	clock   *clock.Fake
	bus     *event.MemoryBus
	deps    Deps
	opts    Options

	mu     sync.Mutex
	events []event.NotificationPayloadV1
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	clk := clock.NewFake(epoch)
	persist := persistence.NewService(store, store, validation.NewSchemaValidator(), clk)

	cdCfg := cooldown.DefaultConfig()
	cdCfg.Clock = clk
	f := &fixture{
		store:   store,
		persist: persist,
		clock:   clk,
		bus:     event.NewMemoryBus(),
		opts:    Options{DisableTimers: true, Clock: clk, Random: never},
	}
	f.deps = Deps{Persistence: persist, Cooldowns: cooldown.NewMemoryService(cdCfg), Bus: f.bus}
	f.bus.Subscribe(event.GameNotification, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.NotificationPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		f.mu.Lock()
		f.events = append(f.events, p)
		f.mu.Unlock()
		return nil
	})
	return f
}

func (f *fixture) kinds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Kind
	}
	return out
}

func (f *fixture) manager(t *testing.T, size int) *Manager {
	t.Helper()
	m, err := NewManager(context.Background(), size, f.deps, f.opts)
	require.NoError(t, err)
	return m
}

// open starts a single session outside any manager
func (f *fixture) open(t *testing.T, playerID string) *Session {
	t.Helper()
	ctx := context.Background()
	s := newSession(ctx, playerID, f.persist.Load(ctx, playerID), f.deps, f.opts)
	s.start()
	t.Cleanup(func() { _ = s.Close(context.Background(), persistence.TriggerShutdown) })
	return s
}

func (f *fixture) seed(t *testing.T, playerID string, state *domain.PlayerState) {
	t.Helper()
	require.NoError(t, f.persist.Save(context.Background(), playerID, state))
}
