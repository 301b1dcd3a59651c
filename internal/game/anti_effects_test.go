package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func TestFixAntiEffect(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		money     float64
		wantErr   error
		wantMoney float64
	}{
		{name: "not active", id: "glitch", money: 1e6, wantErr: domain.ErrAntiEffectNotActive, wantMoney: 1e6},
		{name: "insufficient funds", id: "virus", money: 4999, wantErr: domain.ErrInsufficientFunds, wantMoney: 4999},
		{name: "fixed", id: "virus", money: 6000, wantMoney: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := withEffect(catalog.NewPlayerState(), "virus")
			state.Money = tt.money
			e, rec := newTestEngine(state)

			err := e.FixAntiEffect(tt.id)

			assert.Equal(t, tt.wantMoney, e.State().Money)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, e.State().HasAntiEffect("virus"))
				assert.Equal(t, 1, rec.count(domain.NotifyAntiEffectRejected))
				return
			}
			require.NoError(t, err)
			assert.False(t, e.State().HasAntiEffect("virus"))
			assert.Equal(t, 1, rec.count(domain.NotifyAntiEffectFixed))
		})
	}
}

func TestFixAntiEffect_ClickLockout(t *testing.T) {
	state := catalog.NewPlayerState()
	state.Money = 500
	state.ActiveAntiEffects = []domain.AntiEffect{{
		ID: domain.AntiEffectClickButtonBlock, Type: domain.AntiEffectClick, Severity: 1, FixCost: 100, Duration: -1, Applied: true,
	}}
	state.ClickBlocked = true
	e, _ := newTestEngine(state)

	require.NoError(t, e.FixAntiEffect(domain.AntiEffectClickButtonBlock))

	assert.False(t, e.State().ClickBlocked)
	assert.Equal(t, 400.0, e.State().Money)
	_, err := e.Click()
	assert.NoError(t, err)
}

func TestTickAntiEffectCheck(t *testing.T) {
	e, _ := newTestEngine(nil, 0, drawFor(1, 2))

	got, ok := e.TickAntiEffectCheck()

	require.True(t, ok)
	assert.Equal(t, "glitch", got.ID)
	assert.True(t, e.State().HasAntiEffect("glitch"))
}

func TestTickAntiEffectCheck_Shielded(t *testing.T) {
	state := catalog.NewPlayerState()
	state.ShieldActive = true
	e, _ := newTestEngine(state, 0)

	_, ok := e.TickAntiEffectCheck()

	assert.False(t, ok)
	assert.Empty(t, e.State().ActiveAntiEffects)
}

func TestTickAntiEffectCheck_DynamicLockout(t *testing.T) {
	state := catalog.NewPlayerState()
	state.TotalEarned = 1e6
	state.Money = 20_000
	e, _ := newTestEngine(state, 0, 0.999)

	got, ok := e.TickAntiEffectCheck()

	require.True(t, ok)
	assert.Equal(t, domain.AntiEffectClickButtonBlock, got.ID)
	assert.Equal(t, 2000.0, got.FixCost)
	assert.True(t, e.State().ClickBlocked)
}
