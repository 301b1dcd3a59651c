package persistence

import "time"

// OfflineThreshold is the minimum absence that earns offline income
const OfflineThreshold = 60 * time.Second

// Save triggers
const (
	TriggerManual   = "manual"
	TriggerAutosave = "autosave"
	TriggerPurchase = "purchase"
	TriggerShutdown = "shutdown"
	TriggerEvicted  = "evicted"
)

// Raw snapshot keys that decide how rewards are rebuilt
var bucketKeys = []string{"clickEffects", "visualEffects", "bonusEffects", "specialEffects"}

// Log messages
const (
	LogMsgSaveFailed         = "Failed to save game"
	LogMsgSaved              = "Game saved"
	LogMsgLeaderboardFailed  = "Failed to update leaderboard"
	LogMsgLoadFailed         = "Failed to load game, starting fresh"
	LogMsgSnapshotInvalid    = "Saved game failed validation, starting fresh"
	LogMsgLoaded             = "Game loaded"
	LogMsgNoSave             = "No saved game"
	LogMsgOfflineEarnings    = "Applied offline earnings"
	LogMsgDroppedUnknownID   = "Dropped unknown id from saved game"
	LogMsgResetFailed        = "Failed to delete saved game"
	LogMsgActiveSkinFallback = "Active skin not owned, falling back to starter skin"
)

// Error messages
const (
	ErrMsgEncodeFailed = "failed to encode snapshot: %w"
	ErrMsgDecodeFailed = "failed to decode snapshot: %w"
	ErrMsgWriteFailed  = "failed to write snapshot: %w"
	ErrMsgDeleteFailed = "failed to delete snapshot: %w"
	ErrMsgPlayerID     = "player id is required"
)
