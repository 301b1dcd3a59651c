package cooldown

import "time"

// =============================================================================
// Actions
// =============================================================================

const (
	// ActionWheel is the fortune wheel spin
	ActionWheel = "wheel"
)

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute

	WheelMinCooldown = 1 * time.Minute
	WheelMaxCooldown = 5 * time.Minute
	// WheelCooldownStep keeps wheel cooldowns on whole minutes
	WheelCooldownStep = time.Minute

	// RedisLockTTL bounds how long a crashed holder can keep a redis cooldown lock
	RedisLockTTL = 10 * time.Second
)

// =============================================================================
// Hash Constants
// =============================================================================

const (
	// HashSeparator is the separator used when combining playerID and action for lock keys
	HashSeparator = ":"

	// HashMaskPositiveInt64 is the bit mask to ensure advisory lock keys are positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// =============================================================================
// Key Constants
// =============================================================================

const (
	RedisKeyPrefix     = "cooldown:"
	RedisLockKeyPrefix = "cooldown-lock:"
)

// =============================================================================
// SQL Query Constants
// =============================================================================

const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// SQLSelectReadyAt retrieves when a player's action becomes available again
	SQLSelectReadyAt = `
		SELECT ready_at
		FROM player_cooldowns
		WHERE player_id = $1 AND action_name = $2
	`

	// SQLDeleteCooldown removes a cooldown record
	SQLDeleteCooldown = `DELETE FROM player_cooldowns WHERE player_id = $1 AND action_name = $2`

	// SQLUpsertCooldown inserts or updates a cooldown expiry
	SQLUpsertCooldown = `
		INSERT INTO player_cooldowns (player_id, action_name, ready_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, action_name) DO UPDATE
		SET ready_at = EXCLUDED.ready_at
	`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire cooldown lock: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get cooldown within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetReadyAtFailed        = "failed to get cooldown expiry: %w"
	ErrMsgLockBusy                = "cooldown lock is held by another request"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent request on cooldown"
	LogMsgCooldownEnforced      = "Cooldown enforced successfully"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
