package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashPlayerAction(t *testing.T) {
	tests := []struct {
		name     string
		playerID string
		action   string
	}{
		{"normal", "player123", "wheel"},
		{"empty", "", ""},
		{"symbols", "player!@#", "action$%^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h1 := hashPlayerAction(tt.playerID, tt.action)
			h2 := hashPlayerAction(tt.playerID, tt.action)

			assert.Equal(t, h1, h2, "hash should be deterministic")
			assert.GreaterOrEqual(t, h1, int64(0), "hash should be positive")
		})
	}

	assert.NotEqual(t, hashPlayerAction("p1", "wheel"), hashPlayerAction("p2", "wheel"))
	assert.NotEqual(t, hashPlayerAction("p1", "wheel"), hashPlayerAction("p1", "other"))
}

func TestRemaining(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { t := now.Add(d); return &t }

	tests := []struct {
		name           string
		readyAt        *time.Time
		wantOnCooldown bool
		wantRemaining  time.Duration
	}{
		{name: "never used", readyAt: nil},
		{name: "active", readyAt: at(3 * time.Minute), wantOnCooldown: true, wantRemaining: 3 * time.Minute},
		{name: "expired", readyAt: at(-time.Minute)},
		{name: "exact boundary", readyAt: at(0)},
		{name: "just before expiry", readyAt: at(time.Second), wantOnCooldown: true, wantRemaining: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onCooldown, left := remaining(now, tt.readyAt)
			assert.Equal(t, tt.wantOnCooldown, onCooldown)
			assert.Equal(t, tt.wantRemaining, left)
		})
	}
}
