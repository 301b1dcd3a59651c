package repository

import (
	"context"
)

// SnapshotKeyPrefix namespaces saved games in key-value backends
const SnapshotKeyPrefix = "cyber-clicker-save:"

// SnapshotKey is the storage key of a player's saved game
func SnapshotKey(playerID string) string {
	return SnapshotKeyPrefix + playerID
}

// Snapshots stores serialized saved games. Get returns domain.ErrSnapshotNotFound
// when the player has no save.
type Snapshots interface {
	Get(ctx context.Context, playerID string) ([]byte, error)
	Put(ctx context.Context, playerID string, data []byte) error
	Delete(ctx context.Context, playerID string) error
}
