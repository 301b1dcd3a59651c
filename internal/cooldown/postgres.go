package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CyberClicker_Go/internal/logger"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{db: db, config: config}
}

// CheckCooldown is an unlocked read
func (b *postgresBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	readyAt, err := b.getReadyAt(ctx, b.db, playerID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}
	onCooldown, left := remaining(b.config.now(), readyAt)
	return onCooldown, left, nil
}

// EnforceCooldown uses check-then-lock: a cheap unlocked read rejects most
// requests, then an advisory lock serializes the recheck and the update.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, left, err := b.CheckCooldown(ctx, playerID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: left}
	}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "player_id", playerID)
		if err := fn(); err != nil {
			return err
		}
		return b.setReadyAt(ctx, b.db, playerID, action, b.config.now().Add(b.config.Duration(action)))
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Advisory locks work even when no row exists yet
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashPlayerAction(playerID, action)); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	readyAt, err := b.getReadyAt(ctx, tx, playerID, action)
	if err != nil {
		return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
	}
	if onCooldown, left := remaining(b.config.now(), readyAt); onCooldown {
		log.Debug(LogMsgRaceConditionDetected, "action", action, "player_id", playerID, "remaining", left)
		return ErrOnCooldown{Action: action, Remaining: left}
	}

	if err := fn(); err != nil {
		return err
	}

	if err := b.setReadyAt(ctx, tx, playerID, action, b.config.now().Add(b.config.Duration(action))); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "player_id", playerID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, playerID, action string) error {
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, playerID, action); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetReadyAt returns when the action is available again
func (b *postgresBackend) GetReadyAt(ctx context.Context, playerID, action string) (*time.Time, error) {
	readyAt, err := b.getReadyAt(ctx, b.db, playerID, action)
	if err != nil {
		return nil, err
	}
	if onCooldown, _ := remaining(b.config.now(), readyAt); !onCooldown {
		return nil, nil
	}
	return readyAt, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (b *postgresBackend) getReadyAt(ctx context.Context, q querier, playerID, action string) (*time.Time, error) {
	var readyAt time.Time
	err := q.QueryRow(ctx, SQLSelectReadyAt, playerID, action).Scan(&readyAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetReadyAtFailed, err)
	}
	return &readyAt, nil
}

func (b *postgresBackend) setReadyAt(ctx context.Context, e execer, playerID, action string, readyAt time.Time) error {
	_, err := e.Exec(ctx, SQLUpsertCooldown, playerID, action, readyAt)
	return err
}

// hashPlayerAction creates a consistent int64 hash from playerID + action for advisory locking
func hashPlayerAction(playerID, action string) int64 {
	h := sha256.Sum256([]byte(playerID + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
