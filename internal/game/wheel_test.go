package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func TestSpinWheel(t *testing.T) {
	const prizes = 8
	tests := []struct {
		name    string
		arrange func(s *domain.PlayerState)
		draws   []float64
		check   func(t *testing.T, res WheelResult, s *domain.PlayerState)
	}{
		{
			name:  "money",
			draws: []float64{drawFor(0, prizes)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, "money-1", res.Prize.ID)
				assert.Equal(t, 1000.0, s.Money)
				assert.Equal(t, 1000.0, res.Credited)
			},
		},
		{
			name:  "double multiplier",
			draws: []float64{drawFor(1, prizes)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, 2.0, s.TemporaryMultiplier)
				assert.Equal(t, DoubleMultiplierSeconds, s.MultiplierTimeLeft)
			},
		},
		{
			name:  "triple multiplier",
			draws: []float64{drawFor(5, prizes)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, 3.0, s.TemporaryMultiplier)
				assert.Equal(t, TripleMultiplierSeconds, s.MultiplierTimeLeft)
			},
		},
		{
			name:  "boost without auto clicker pays out",
			draws: []float64{drawFor(3, prizes)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, 2000.0, s.Money)
				assert.Equal(t, 1.0, s.TemporaryMultiplier)
			},
		},
		{
			name:    "boost with auto clicker",
			arrange: func(s *domain.PlayerState) { withLevel(s, domain.UpgradeAutoClicker, 1) },
			draws:   []float64{drawFor(3, prizes)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, 1.5, s.TemporaryMultiplier)
				assert.Equal(t, BoostSeconds, s.MultiplierTimeLeft)
				assert.Zero(t, s.Money)
			},
		},
		{
			name:  "special lucky day",
			draws: []float64{drawFor(7, prizes), drawFor(0, 3)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, SpecialLuckyDay, res.Special)
				assert.Equal(t, 5.0, s.TemporaryMultiplier)
				assert.Equal(t, LuckyDaySeconds, s.MultiplierTimeLeft)
			},
		},
		{
			name:  "special shield",
			draws: []float64{drawFor(7, prizes), drawFor(1, 3)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, SpecialShield, res.Special)
				assert.True(t, s.ShieldActive)
				assert.Equal(t, WheelShieldSeconds, s.ShieldTimeLeft)
			},
		},
		{
			name: "special cleanup",
			arrange: func(s *domain.PlayerState) {
				withEffect(s, "virus")
				withEffect(s, domain.AntiEffectClickButtonBlock)
				s.ClickBlocked = true
			},
			draws: []float64{drawFor(7, prizes), drawFor(2, 3)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, SpecialCleanup, res.Special)
				assert.Empty(t, s.ActiveAntiEffects)
				assert.False(t, s.ClickBlocked)
				assert.Zero(t, s.Money)
			},
		},
		{
			name:  "special cleanup with nothing to clean",
			draws: []float64{drawFor(7, prizes), drawFor(2, 3)},
			check: func(t *testing.T, res WheelResult, s *domain.PlayerState) {
				assert.Equal(t, SpecialCleanupBonus, res.Special)
				assert.Equal(t, 5000.0, s.Money)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := catalog.NewPlayerState()
			if tt.arrange != nil {
				tt.arrange(state)
			}
			e, rec := newTestEngine(state, tt.draws...)

			res := e.SpinWheel()

			tt.check(t, res, e.State())
			assert.Equal(t, 1, rec.count(domain.NotifyWheelPrize))
		})
	}
}
