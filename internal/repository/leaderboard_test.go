package repository

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, LeaderboardDefaultLimit},
		{-3, LeaderboardDefaultLimit},
		{5, 5},
		{100, 100},
		{1000, LeaderboardCapacity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "limit %d", tt.in)
	}
}

func TestLess_Ordering(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{Name: "zed", Score: 1, Prestige: 1},
		{Name: "amy", Score: 1, Prestige: 1},
		{Name: "bob", Score: 1, Prestige: 3},
		{Name: "cat", Score: 5, Prestige: 0},
	}

	slices.SortFunc(entries, func(a, b domain.LeaderboardEntry) int {
		if Less(a, b) {
			return -1
		}
		if Less(b, a) {
			return 1
		}
		return 0
	})

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"cat", "bob", "amy", "zed"}, names)
}

func TestMerge_KeepsBestScore(t *testing.T) {
	existing := domain.LeaderboardEntry{Name: "neo", Score: 10, Prestige: 2}

	got := Merge(existing, domain.LeaderboardEntry{Name: "neo", Score: 4, Prestige: 3})
	assert.Equal(t, 10.0, got.Score)
	assert.Equal(t, 3, got.Prestige)

	got = Merge(existing, domain.LeaderboardEntry{Name: "neo", Score: 12, Prestige: 1})
	assert.Equal(t, 12.0, got.Score)
	assert.Equal(t, 1, got.Prestige)
}

type fakeTx struct {
	rollbackErr error
	rolledBack  bool
}

func (f *fakeTx) Commit(context.Context) error { return nil }
func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return f.rollbackErr
}

func TestSafeRollback(t *testing.T) {
	for _, err := range []error{nil, errors.New("boom")} {
		tx := &fakeTx{rollbackErr: err}
		SafeRollback(context.Background(), tx)
		assert.True(t, tx.rolledBack)
	}
}
