// Package cooldown tracks per-player action cooldowns with memory, Postgres or Redis storage.
package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// Service manages action cooldowns for players
type Service interface {
	// CheckCooldown reports whether the action is on cooldown and how long is left
	CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks the cooldown, runs fn, and starts a new
	// cooldown only if fn succeeded
	EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error

	// ResetCooldown clears a cooldown
	ResetCooldown(ctx context.Context, playerID, action string) error

	// GetReadyAt returns when the action becomes available, nil when it already is
	GetReadyAt(ctx context.Context, playerID, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is matches any ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// RemainingFrom extracts the remaining time from a cooldown error
func RemainingFrom(err error) (time.Duration, bool) {
	var cd ErrOnCooldown
	if errors.As(err, &cd) {
		return cd.Remaining, true
	}
	return 0, false
}
