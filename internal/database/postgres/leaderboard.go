package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// LeaderboardRepository keeps the capped global leaderboard
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

var _ repository.Leaderboard = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Upsert merges the entry and trims the table back to capacity in one transaction
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, SQLUpsertLeaderboard, entry.Name, entry.Score, entry.Prestige, entry.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertLeaderboard, err)
	}
	if _, err := tx.Exec(ctx, SQLTrimLeaderboard, repository.LeaderboardCapacity); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertLeaderboard, err)
	}
	return tx.Commit(ctx)
}

// Top returns the best entries
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx, SQLSelectLeaderboard, repository.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadLeaderboard, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.Name, &e.Score, &e.Prestige, &e.UpdatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadLeaderboard, err)
	}
	return entries, nil
}
