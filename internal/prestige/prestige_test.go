package prestige

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func TestRobocoinsGain(t *testing.T) {
	tests := []struct {
		name        string
		totalEarned float64
		want        float64
	}{
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"below threshold", 50_000, 0},
		{"small gain", 1_000_000, 0.03},
		{"one billion", 1e9, 1},
		{"four billion", 4e9, 2},
		{"floors to cents", 2e9, 1.41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RobocoinsGain(tt.totalEarned), 1e-9)
		})
	}
}

func TestRobocoinsGain_Monotonic(t *testing.T) {
	prev := 0.0
	for v := 0.0; v <= 1e12; v = v*1.7 + 1000 {
		g := RobocoinsGain(v)
		assert.GreaterOrEqual(t, g, prev, "at %v", v)
		prev = g
	}
}

func TestBonusMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, BonusMultiplier(0))
	assert.InDelta(t, 1.25, BonusMultiplier(2.5), 1e-9)
}

func completeState() *domain.PlayerState {
	state := catalog.NewPlayerState()
	for id := range state.Upgrades {
		state.Upgrades[id] = domain.UpgradeState{Level: 1, Owned: true}
	}
	for id := range state.Skins {
		state.Skins[id] = domain.SkinState{Owned: true}
	}
	return state
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() *domain.PlayerState
		wantErr error
	}{
		{
			name: "first prestige without everything owned",
			arrange: func() *domain.PlayerState {
				s := catalog.NewPlayerState()
				s.TotalEarned = 4e9
				return s
			},
			wantErr: domain.ErrPrestigeRequirements,
		},
		{
			name: "first prestige with everything but not enough progress",
			arrange: func() *domain.PlayerState {
				s := completeState()
				s.TotalEarned = 1000
				return s
			},
			wantErr: domain.ErrNotEnoughProgress,
		},
		{
			name: "first prestige eligible",
			arrange: func() *domain.PlayerState {
				s := completeState()
				s.TotalEarned = 1e9
				return s
			},
		},
		{
			name: "later prestige skips the ownership gate",
			arrange: func() *domain.PlayerState {
				s := catalog.NewPlayerState()
				s.PrestigeCount = 1
				s.TotalEarned = 1e9
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.arrange())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPreview(t *testing.T) {
	state := completeState()
	state.TotalEarned = 4e9
	state.Robocoins = 1

	got := Preview(state)

	assert.True(t, got.Eligible)
	assert.Empty(t, got.Reason)
	assert.InDelta(t, 2.0, got.Gain, 1e-9)
	assert.InDelta(t, 1.1, got.CurrentMultiplier, 1e-9)
	assert.InDelta(t, 1.3, got.NextMultiplier, 1e-9)

	state.TotalEarned = 0
	got = Preview(state)
	assert.False(t, got.Eligible)
	assert.Contains(t, got.Reason, domain.ErrMsgNotEnoughProgress)
}
