package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/config"
	"github.com/osse101/CyberClicker_Go/internal/event"
	"github.com/osse101/CyberClicker_Go/internal/leaderboard"
	"github.com/osse101/CyberClicker_Go/internal/persistence"
	"github.com/osse101/CyberClicker_Go/internal/server"
	"github.com/osse101/CyberClicker_Go/internal/session"
	"github.com/osse101/CyberClicker_Go/internal/sse"
	"github.com/osse101/CyberClicker_Go/internal/validation"
)

// App is the fully wired game server
type App struct {
	Backend     *Backend
	Bus         event.Bus
	Hub         *sse.Hub
	Leaderboard leaderboard.Service
	Sessions    *session.Manager
	Server      *server.Server
}

// Build wires every component for cfg. The hub is started; the HTTP server is not.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	clk := clock.Real{}

	backend, err := OpenBackend(ctx, cfg, clk)
	if err != nil {
		return nil, err
	}

	hub := sse.NewHub()
	bus, err := InitializeEventSystem(hub)
	if err != nil {
		backend.Close()
		return nil, err
	}

	board := leaderboard.NewService(backend.Leaderboard, cfg.LeaderboardCacheTTL)
	store := persistence.NewService(backend.Snapshots, board, validation.NewSchemaValidator(), clk)

	sessions, err := session.NewManager(ctx, cfg.SessionCacheSize, session.Deps{
		Persistence: store,
		Cooldowns:   backend.Cooldowns,
		Bus:         bus,
	}, session.Options{
		AutosaveInterval:        cfg.AutosaveInterval,
		AntiEffectCheckInterval: cfg.AntiEffectCheckInterval,
		Clock:                   clk,
	})
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateSessions, err)
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Clock:          clk,
	}, backend.Pinger, sessions, board, hub)

	hub.Start()

	return &App{
		Backend:     backend,
		Bus:         bus,
		Hub:         hub,
		Leaderboard: board,
		Sessions:    sessions,
		Server:      srv,
	}, nil
}
