package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func TestClick_FreshState(t *testing.T) {
	e, _ := newTestEngine(nil)

	res, err := e.Click()

	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Earned)
	state := e.State()
	assert.Equal(t, 1.0, state.Money)
	assert.Equal(t, 1.0, state.TotalEarned)
	assert.Equal(t, int64(1), state.ClickCount)
}

func TestClick_Blocked(t *testing.T) {
	state := catalog.NewPlayerState()
	state.ClickBlocked = true
	e, rec := newTestEngine(state)

	_, err := e.Click()

	assert.ErrorIs(t, err, domain.ErrClickBlocked)
	assert.Zero(t, e.State().Money)
	assert.Zero(t, e.State().ClickCount)
	assert.Equal(t, []domain.NotificationKind{domain.NotifyClickBlocked}, rec.kinds())
}

func TestClick_Resolution(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() *domain.PlayerState
		draws   []float64
		want    float64
		check   func(t *testing.T, res ClickResult)
	}{
		{
			name: "critical multiplies by five",
			arrange: func() *domain.PlayerState {
				return withLevel(catalog.NewPlayerState(), domain.UpgradeCriticalClick, 1)
			},
			draws: []float64{0.01, never},
			want:  5,
			check: func(t *testing.T, res ClickResult) { assert.True(t, res.Critical) },
		},
		{
			name: "lucky charm raises crit chance",
			arrange: func() *domain.PlayerState {
				s := catalog.NewPlayerState()
				s.BonusEffects = []domain.RewardID{catalog.RewardLuckyCharm}
				return s
			},
			draws: []float64{0.04, never},
			want:  5,
		},
		{
			name: "glitch skips the critical roll",
			arrange: func() *domain.PlayerState {
				s := withLevel(catalog.NewPlayerState(), domain.UpgradeCriticalClick, 10)
				return withEffect(s, "glitch")
			},
			draws: []float64{0.01, never},
			want:  1,
			check: func(t *testing.T, res ClickResult) { assert.False(t, res.Critical) },
		},
		{
			name: "lucky adds ten times the click",
			arrange: func() *domain.PlayerState {
				return withLevel(catalog.NewPlayerState(), domain.UpgradeLuckyClicks, 1)
			},
			draws: []float64{never, 0.01, never},
			want:  11,
			check: func(t *testing.T, res ClickResult) { assert.True(t, res.Lucky) },
		},
		{
			name: "mega multiplies by level times effect",
			arrange: func() *domain.PlayerState {
				return withLevel(catalog.NewPlayerState(), domain.UpgradeMegaClick, 1)
			},
			draws: []float64{never, never, 0.005, never},
			want:  10,
			check: func(t *testing.T, res ClickResult) { assert.True(t, res.Mega) },
		},
		{
			name: "temporal shift doubles",
			arrange: func() *domain.PlayerState {
				s := catalog.NewPlayerState()
				s.SpecialEffects = []domain.RewardID{catalog.RewardTemporalShift}
				return s
			},
			draws: []float64{never, never, 0.01, never},
			want:  2,
			check: func(t *testing.T, res ClickResult) { assert.True(t, res.TemporalShift) },
		},
		{
			name: "temporary multiplier",
			arrange: func() *domain.PlayerState {
				s := catalog.NewPlayerState()
				s.TemporaryMultiplier = 3
				return s
			},
			want: 3,
		},
		{
			name: "click and income penalties compound",
			arrange: func() *domain.PlayerState {
				s := withEffect(catalog.NewPlayerState(), "virus")
				return withEffect(s, "ddos")
			},
			want: 0.56,
		},
		{
			name: "income rewards and prestige bonus",
			arrange: func() *domain.PlayerState {
				s := catalog.NewPlayerState()
				s.BonusEffects = []domain.RewardID{catalog.RewardCreditBoost, catalog.RewardGoldenTouch}
				s.Robocoins = 1
				return s
			},
			want: 1.5125,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(tt.arrange(), tt.draws...)

			res, err := e.Click()

			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.Earned, 1e-9)
			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestClick_Combo(t *testing.T) {
	state := withLevel(catalog.NewPlayerState(), domain.UpgradeClickCombo, 1)
	e, _ := newTestEngine(state)

	first, err := e.Click()
	require.NoError(t, err)
	second, err := e.Click()
	require.NoError(t, err)
	third, err := e.Click()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, first.Earned, 1e-9)
	assert.InDelta(t, 1.1, second.Earned, 1e-9)
	assert.InDelta(t, 1.2, third.Earned, 1e-9)
	assert.Equal(t, 3, third.Combo)
	assert.Equal(t, ComboWindowSeconds, e.State().ComboTimer)
}

func TestClick_ComboBlocked(t *testing.T) {
	state := withLevel(catalog.NewPlayerState(), domain.UpgradeClickCombo, 1)
	withEffect(state, "corruption")
	e, _ := newTestEngine(state)

	_, _ = e.Click()
	res, err := e.Click()

	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Earned, 1e-9)
	assert.Zero(t, e.State().ComboCount)
}

func TestClick_OtherActionResetsCombo(t *testing.T) {
	state := withLevel(catalog.NewPlayerState(), domain.UpgradeClickCombo, 1)
	e, _ := newTestEngine(state)
	_, _ = e.Click()
	_, _ = e.Click()
	require.Equal(t, 2, e.State().ComboCount)

	_, _ = e.BuyUpgrade("nope")

	assert.Zero(t, e.State().ComboCount)
	assert.Zero(t, e.State().ComboTimer)
}

func TestClick_RollsAntiEffect(t *testing.T) {
	e, rec := newTestEngine(nil, never, never, 0, 0)

	res, err := e.Click()

	require.NoError(t, err)
	require.NotNil(t, res.AntiEffect)
	assert.Equal(t, "virus", res.AntiEffect.ID)
	assert.True(t, e.State().HasAntiEffect("virus"))
	assert.Equal(t, 1, rec.count(domain.NotifyAntiEffectApplied))
}

func TestClick_ShieldSuppressesRoll(t *testing.T) {
	state := catalog.NewPlayerState()
	state.ShieldActive = true
	state.ShieldTimeLeft = 10
	e, _ := newTestEngine(state, never, never, 0, 0)

	res, err := e.Click()

	require.NoError(t, err)
	assert.Nil(t, res.AntiEffect)
	assert.Empty(t, e.State().ActiveAntiEffects)
}

func TestAddMoney_AnnouncesUnlocksOnce(t *testing.T) {
	state := catalog.NewPlayerState()
	e, rec := newTestEngine(state)
	withAdvancedUnlocked(state)

	e.AddMoney(1)
	e.AddMoney(1)

	assert.Equal(t, 1, rec.count(domain.NotifyCategoryUnlocked))
}

func TestNew_DoesNotReannounceRestoredUnlocks(t *testing.T) {
	state := withAdvancedUnlocked(catalog.NewPlayerState())
	e, rec := newTestEngine(state)

	e.AddMoney(1)

	assert.Zero(t, rec.count(domain.NotifyCategoryUnlocked))
}
