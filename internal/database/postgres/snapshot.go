// Package postgres implements the repositories on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// SnapshotRepository stores saved games as JSONB rows
type SnapshotRepository struct {
	db *pgxpool.Pool
}

var _ repository.Snapshots = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Get reads a saved game
func (r *SnapshotRepository) Get(ctx context.Context, playerID string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx, SQLSelectSnapshot, playerID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSnapshot, err)
	}
	return data, nil
}

// Put inserts or replaces a saved game
func (r *SnapshotRepository) Put(ctx context.Context, playerID string, data []byte) error {
	if _, err := r.db.Exec(ctx, SQLUpsertSnapshot, playerID, data); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPutSnapshot, err)
	}
	return nil
}

// Delete removes a saved game
func (r *SnapshotRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, SQLDeleteSnapshot, playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSnapshot, err)
	}
	return nil
}
