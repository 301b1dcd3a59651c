package antieffect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

func ids(effects []domain.AntiEffect) []string {
	out := make([]string, len(effects))
	for i, e := range effects {
		out[i] = e.ID
	}
	return out
}

func TestTrySelect(t *testing.T) {
	tests := []struct {
		name        string
		draws       []float64
		active      []domain.AntiEffect
		totalEarned float64
		chance      float64
		wantOK      bool
		wantID      string
	}{
		{
			name:   "gate fails",
			draws:  []float64{0.5},
			chance: 0.01,
		},
		{
			name:   "zero chance never triggers",
			draws:  []float64{0},
			chance: 0,
		},
		{
			name:   "early game picks first eligible",
			draws:  []float64{0, 0},
			chance: 1,
			wantOK: true,
			wantID: "virus",
		},
		{
			name:   "early game picks last eligible",
			draws:  []float64{0, 0.99},
			chance: 1,
			wantOK: true,
			wantID: "glitch",
		},
		{
			name:   "active ids are skipped",
			draws:  []float64{0, 0},
			active: []domain.AntiEffect{{ID: "virus"}},
			chance: 1,
			wantOK: true,
			wantID: "glitch",
		},
		{
			name:   "nothing left",
			draws:  []float64{0, 0},
			active: []domain.AntiEffect{{ID: "virus"}, {ID: "glitch"}},
			chance: 1,
		},
		{
			name:        "late game can pick ransomware",
			draws:       []float64{0, 0.999},
			totalEarned: 1e6,
			chance:      1,
			wantOK:      true,
			wantID:      domain.AntiEffectRansomware,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(utils.Sequence(tt.draws...))

			got, ok := s.TrySelect(tt.active, tt.totalEarned, tt.chance, nil)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID)
				assert.True(t, got.Applied)
			}
		})
	}
}

func TestTrySelect_SeedsTimer(t *testing.T) {
	pool := Eligible(nil, 100_000, nil)
	idx := -1
	for i, e := range pool {
		if e.ID == "ddos" {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	draw := (float64(idx) + 0.5) / float64(len(pool))

	got, ok := NewSelector(utils.Sequence(0, draw)).TrySelect(nil, 100_000, 1, nil)

	require.True(t, ok)
	assert.Equal(t, "ddos", got.ID)
	assert.Equal(t, 60, got.TimeRemaining)
}

func TestEligible_ProgressFilter(t *testing.T) {
	early := ids(Eligible(nil, 10_000, nil))
	assert.ElementsMatch(t, []string{"virus", "glitch"}, early)

	mid := ids(Eligible(nil, 100_000, nil))
	assert.Len(t, mid, 12)
	assert.NotContains(t, mid, domain.AntiEffectRansomware)
	assert.NotContains(t, mid, "system-slowdown")

	late := ids(Eligible(nil, 500_000, nil))
	assert.Len(t, late, 14)
}

func TestEligible_Dynamic(t *testing.T) {
	state := catalog.NewPlayerState()
	state.Money = 100_000
	state.Upgrades[domain.UpgradeDoubleValue] = domain.UpgradeState{Level: 3, Owned: true}
	dynamic := Dynamic(state)

	early := ids(Eligible(nil, 10_000, dynamic))
	assert.NotContains(t, early, domain.AntiEffectClickButtonBlock)

	mid := ids(Eligible(nil, 100_000, dynamic))
	assert.Contains(t, mid, domain.AntiEffectClickButtonBlock)
	assert.Contains(t, mid, "doubleValue-block")

	withActive := ids(Eligible([]domain.AntiEffect{{ID: "doubleValue-block"}}, 100_000, dynamic))
	assert.NotContains(t, withActive, "doubleValue-block")
}

func TestDynamic(t *testing.T) {
	state := catalog.NewPlayerState()
	state.Money = 500
	state.Upgrades[domain.UpgradePassiveIncome] = domain.UpgradeState{Level: 1, Owned: true}

	got := Dynamic(state)

	require.Len(t, got, 2)
	assert.Equal(t, domain.AntiEffectClickButtonBlock, got[0].ID)
	assert.Equal(t, 100.0, got[0].FixCost)
	assert.Equal(t, "passiveIncome-block", got[1].ID)
	assert.Equal(t, domain.UpgradePassiveIncome, got[1].TargetUpgrade)
	assert.Equal(t, 200.0, got[1].FixCost)

	state.Money = 1_000_000
	got = Dynamic(state)
	assert.Equal(t, 100_000.0, got[0].FixCost)
	assert.Equal(t, 50_000.0, got[1].FixCost)
}

func TestChances(t *testing.T) {
	assert.InDelta(t, 0.01, ClickChance(0), 1e-12)
	assert.InDelta(t, 0.02, ClickChance(1e9), 1e-12)
	assert.Equal(t, 0.05, ClickChance(1e12))

	assert.InDelta(t, 0.005, TimerChance(0), 1e-12)
	assert.InDelta(t, 0.01, TimerChance(1e7), 1e-12)
	assert.Equal(t, 0.05, TimerChance(1e10))
}

func TestDefinition(t *testing.T) {
	tests := []struct {
		id       string
		found    bool
		wantType domain.AntiEffectType
		fixCost  float64
	}{
		{"virus", true, domain.AntiEffectClick, 5000},
		{"ddos", true, domain.AntiEffectIncome, 100000},
		{domain.AntiEffectClickButtonBlock, true, domain.AntiEffectClick, 100},
		{"passiveIncome-block", true, domain.AntiEffectUpgrade, 200},
		{"megaClick-block", true, domain.AntiEffectUpgrade, 5000000},
		{"unknown", false, "", 0},
		{"nothing-block", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, ok := Definition(tt.id)
			require.Equal(t, tt.found, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.id, a.ID)
			assert.Equal(t, tt.wantType, a.Type)
			assert.Equal(t, tt.fixCost, a.FixCost)
		})
	}
}
