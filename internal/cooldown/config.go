package cooldown

import (
	"time"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// Range is the span a cooldown duration is drawn from. Min == Max gives a fixed cooldown.
// The draw is one of Min, Min+Step, ... up to and including Max.
type Range struct {
	Min  time.Duration
	Max  time.Duration
	Step time.Duration
}

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their duration range.
	// Unknown actions use DefaultCooldownDuration.
	Cooldowns map[string]Range

	// Random draws the position inside a Range; nil uses utils.RandomFloat
	Random func() float64

	// Clock defaults to the wall clock
	Clock clock.Clock
}

// DefaultConfig returns the game's cooldowns
func DefaultConfig() Config {
	return Config{
		Cooldowns: map[string]Range{
			ActionWheel: {Min: WheelMinCooldown, Max: WheelMaxCooldown, Step: WheelCooldownStep},
		},
	}
}

// Duration draws the cooldown for one use of action
func (c *Config) Duration(action string) time.Duration {
	r, ok := c.Cooldowns[action]
	if !ok {
		return DefaultCooldownDuration
	}
	if r.Max <= r.Min {
		return r.Min
	}
	step := r.Step
	if step <= 0 {
		step = time.Second
	}
	rnd := c.Random
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	steps := int((r.Max-r.Min)/step) + 1
	return r.Min + time.Duration(utils.PickIndex(rnd, steps))*step
}

func (c *Config) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// remaining reports whether readyAt is still in the future and by how much
func remaining(now time.Time, readyAt *time.Time) (bool, time.Duration) {
	if readyAt == nil || !now.Before(*readyAt) {
		return false, 0
	}
	return true, readyAt.Sub(now)
}
