// Package leaderboard serves the global ranking with a short-lived read cache.
package leaderboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/logger"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// Cache sizing
const (
	DefaultCacheSize = 16
	ErrMsgTopFailed  = "failed to read leaderboard: %w"
	LogMsgCacheHit   = "Leaderboard cache hit"
	LogMsgInvalidate = "Leaderboard cache invalidated"
)

// Service is a repository.Leaderboard that caches Top pages until the TTL
// expires or any entry changes.
type Service interface {
	repository.Leaderboard
}

type service struct {
	repo  repository.Leaderboard
	cache *pageCache
}

// NewService wraps a leaderboard backend. A non-positive ttl disables caching.
func NewService(repo repository.Leaderboard, ttl time.Duration) Service {
	s := &service{repo: repo}
	if ttl > 0 {
		s.cache = newPageCache(DefaultCacheSize, ttl)
	}
	return s
}

// Upsert records a score and drops cached pages
func (s *service) Upsert(ctx context.Context, entry domain.LeaderboardEntry) error {
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return fmt.Errorf("%w: empty leaderboard name", domain.ErrInvalidInput)
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Clear()
		logger.FromContext(ctx).Debug(LogMsgInvalidate, "name", entry.Name)
	}
	return nil
}

// Top returns up to limit ranked entries; limit is clamped to [1, 100]
func (s *service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit = repository.ClampLimit(limit)
	if s.cache != nil {
		if entries, ok := s.cache.Get(limit); ok {
			logger.FromContext(ctx).Debug(LogMsgCacheHit, "limit", limit)
			return entries, nil
		}
	}

	entries, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgTopFailed, err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	if s.cache != nil {
		s.cache.Set(limit, entries)
	}
	return entries, nil
}
