package repository

import (
	"context"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// Leaderboard limits
const (
	LeaderboardCapacity     = 100
	LeaderboardDefaultLimit = 10
)

// Leaderboard stores one ranked entry per player name.
// Upsert keeps the higher score and overwrites the prestige count.
// Top returns entries by score desc, prestige desc, then name.
type Leaderboard interface {
	Upsert(ctx context.Context, entry domain.LeaderboardEntry) error
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// ClampLimit maps a requested page size into [1, LeaderboardCapacity]
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return LeaderboardDefaultLimit
	case limit > LeaderboardCapacity:
		return LeaderboardCapacity
	default:
		return limit
	}
}

// Less orders two entries for ranking
func Less(a, b domain.LeaderboardEntry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Prestige != b.Prestige {
		return a.Prestige > b.Prestige
	}
	return a.Name < b.Name
}

// Merge applies the upsert rule to an existing entry
func Merge(existing, incoming domain.LeaderboardEntry) domain.LeaderboardEntry {
	if existing.Score > incoming.Score {
		incoming.Score = existing.Score
	}
	return incoming
}
