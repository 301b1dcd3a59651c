package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/logger"
	"github.com/osse101/CyberClicker_Go/internal/metrics"
	"github.com/osse101/CyberClicker_Go/internal/repository"
	"github.com/osse101/CyberClicker_Go/internal/validation"
)

// LoadResult is the outcome of restoring a player
type LoadResult struct {
	State           *domain.PlayerState
	Found           bool
	OfflineEarnings float64
}

// Service saves and restores player state
type Service interface {
	Save(ctx context.Context, playerID string, state *domain.PlayerState) error
	Load(ctx context.Context, playerID string) LoadResult
	Reset(ctx context.Context, playerID string) error
}

type service struct {
	snapshots   repository.Snapshots
	leaderboard repository.Leaderboard
	validator   validation.SchemaValidator
	clock       clock.Clock
}

// NewService creates a persistence service. The leaderboard may be nil.
func NewService(snapshots repository.Snapshots, leaderboard repository.Leaderboard, validator validation.SchemaValidator, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.Real{}
	}
	return &service{
		snapshots:   snapshots,
		leaderboard: leaderboard,
		validator:   validator,
		clock:       clk,
	}
}

// Save writes the snapshot and then publishes the player's score. A failed
// leaderboard update is logged but does not fail the save.
func (s *service) Save(ctx context.Context, playerID string, state *domain.PlayerState) error {
	log := logger.FromContext(ctx)
	if playerID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerID)
	}

	start := time.Now()
	err := s.write(ctx, playerID, state)
	metrics.RecordSave(err == nil, time.Since(start).Seconds())
	if err != nil {
		log.Error(LogMsgSaveFailed, "player_id", playerID, "error", err)
		return err
	}
	log.Debug(LogMsgSaved, "player_id", playerID)

	if s.leaderboard != nil {
		entry := domain.LeaderboardEntry{
			Name:      state.PlayerName,
			Score:     state.Robocoins,
			Prestige:  state.PrestigeCount,
			UpdatedAt: s.clock.Now(),
		}
		if err := s.leaderboard.Upsert(ctx, entry); err != nil {
			log.Warn(LogMsgLeaderboardFailed, "player_id", playerID, "error", err)
		}
	}
	return nil
}

func (s *service) write(ctx context.Context, playerID string, state *domain.PlayerState) error {
	data, err := NewSnapshot(state, s.clock.Now()).Encode()
	if err != nil {
		return err
	}
	if err := s.snapshots.Put(ctx, playerID, data); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, err)
	}
	return nil
}

// Load restores a player. Any read, validation or decode problem yields a
// fresh state with Found false.
func (s *service) Load(ctx context.Context, playerID string) LoadResult {
	log := logger.FromContext(ctx)
	fresh := func() LoadResult {
		return LoadResult{State: Reconcile(ctx, defaultSnapshot())}
	}

	data, err := s.snapshots.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			log.Debug(LogMsgNoSave, "player_id", playerID)
		} else {
			log.Error(LogMsgLoadFailed, "player_id", playerID, "error", err)
		}
		return fresh()
	}

	if s.validator != nil {
		if err := s.validator.ValidateBytes(data, validation.SnapshotSchema); err != nil {
			log.Warn(LogMsgSnapshotInvalid, "player_id", playerID, "error", err)
			return fresh()
		}
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		log.Error(LogMsgLoadFailed, "player_id", playerID, "error", err)
		return fresh()
	}

	state := Reconcile(ctx, snap)
	result := LoadResult{State: state, Found: true}
	if earned := OfflineEarnings(state, s.clock.Now()); earned > 0 {
		state.Money += earned
		state.TotalEarned += earned
		result.OfflineEarnings = earned
		log.Info(LogMsgOfflineEarnings, "player_id", playerID, "amount", earned)
	}
	log.Debug(LogMsgLoaded, "player_id", playerID)
	return result
}

// Reset deletes the saved game. Missing saves are not an error.
func (s *service) Reset(ctx context.Context, playerID string) error {
	if err := s.snapshots.Delete(ctx, playerID); err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		logger.FromContext(ctx).Error(LogMsgResetFailed, "player_id", playerID, "error", err)
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}
	return nil
}
