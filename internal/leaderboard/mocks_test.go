package leaderboard

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// MockLeaderboard implements repository.Leaderboard for testing
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLeaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
