// Package filestore keeps saved games and the leaderboard as JSON files in a data directory.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

const (
	snapshotDir     = "saves"
	leaderboardFile = "leaderboard.json"
	fileMode        = 0o644
	dirMode         = 0o755
)

// Store implements repository.Snapshots and repository.Leaderboard on the local filesystem
type Store struct {
	dir string
	mu  sync.RWMutex
}

var (
	_ repository.Snapshots   = (*Store)(nil)
	_ repository.Leaderboard = (*Store)(nil)
)

// New creates the data directory layout under dir
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, snapshotDir), dirMode); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) snapshotPath(playerID string) (string, error) {
	if playerID == "" || playerID != filepath.Base(playerID) || strings.HasPrefix(playerID, ".") {
		return "", fmt.Errorf("%w: player id %q", domain.ErrInvalidInput, playerID)
	}
	return filepath.Join(s.dir, snapshotDir, repository.SnapshotKey(playerID)+".json"), nil
}

// Get reads a saved game
func (s *Store) Get(_ context.Context, playerID string) ([]byte, error) {
	path, err := s.snapshotPath(playerID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Put writes a saved game atomically
func (s *Store) Put(_ context.Context, playerID string, data []byte) error {
	path, err := s.snapshotPath(playerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeAtomic(path, data)
}

// Delete removes a saved game. Deleting a missing save is not an error.
func (s *Store) Delete(_ context.Context, playerID string) error {
	path, err := s.snapshotPath(playerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// Upsert merges an entry into the leaderboard file
func (s *Store) Upsert(_ context.Context, entry domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readLeaderboard()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(entries, func(e domain.LeaderboardEntry) bool { return e.Name == entry.Name })
	if idx >= 0 {
		entries[idx] = repository.Merge(entries[idx], entry)
	} else {
		entries = append(entries, entry)
	}
	sortEntries(entries)
	if len(entries) > repository.LeaderboardCapacity {
		entries = entries[:repository.LeaderboardCapacity]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	return writeAtomic(filepath.Join(s.dir, leaderboardFile), data)
}

// Top returns the best entries
func (s *Store) Top(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.readLeaderboard()
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	if limit = repository.ClampLimit(limit); len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) readLeaderboard() ([]domain.LeaderboardEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, leaderboardFile))
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return entries, nil
}

func sortEntries(entries []domain.LeaderboardEntry) {
	slices.SortFunc(entries, func(a, b domain.LeaderboardEntry) int {
		switch {
		case repository.Less(a, b):
			return -1
		case repository.Less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// writeAtomic writes to a temp file in the same directory and renames it into place
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), fileMode); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
