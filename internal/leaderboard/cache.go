package leaderboard

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// CacheSchemaVersion invalidates cached pages when the entry shape changes
const CacheSchemaVersion = "1.0"

type cachedPage struct {
	Version  string
	Entries  []domain.LeaderboardEntry
	CachedAt time.Time
}

// pageCache keeps recent Top pages keyed by limit
type pageCache struct {
	lru *expirable.LRU[string, *cachedPage]
}

func newPageCache(size int, ttl time.Duration) *pageCache {
	return &pageCache{
		lru: expirable.NewLRU[string, *cachedPage](size, nil, ttl),
	}
}

func (c *pageCache) Get(limit int) ([]domain.LeaderboardEntry, bool) {
	key := strconv.Itoa(limit)
	page, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if page.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return append([]domain.LeaderboardEntry(nil), page.Entries...), true
}

func (c *pageCache) Set(limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(strconv.Itoa(limit), &cachedPage{
		Version:  CacheSchemaVersion,
		Entries:  append([]domain.LeaderboardEntry(nil), entries...),
		CachedAt: time.Now(),
	})
}

// Clear drops every page; any upsert can reorder all of them
func (c *pageCache) Clear() {
	c.lru.Purge()
}
