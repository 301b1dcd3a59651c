package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func load(t *testing.T, raw string) *domain.PlayerState {
	t.Helper()
	snap, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	return Reconcile(context.Background(), snap)
}

func TestReconcile_Upgrades(t *testing.T) {
	s := load(t, `{"upgrades": {"doubleValue": {"level": 3, "owned": true}, "quantumDrive": {"level": 9}}}`)

	assert.Equal(t, domain.UpgradeState{Level: 3, Owned: true}, s.Upgrades[domain.UpgradeDoubleValue])
	assert.Len(t, s.Upgrades, len(catalog.Upgrades()))
	assert.Equal(t, domain.UpgradeState{}, s.Upgrades[domain.UpgradeMegaClick])
	_, unknown := s.Upgrades["quantumDrive"]
	assert.False(t, unknown)
}

func TestReconcile_Skins(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantActive domain.SkinID
	}{
		{"owned active skin kept", `{"skins": {"vaporwave": {"owned": true}}, "activeSkin": "vaporwave"}`, "vaporwave"},
		{"unowned active skin", `{"activeSkin": "matrix"}`, domain.StarterSkin},
		{"unknown active skin", `{"activeSkin": "hotdog"}`, domain.StarterSkin},
		{"starter ownership restored", `{"skins": {"cyberpunk": {"owned": false}}}`, domain.StarterSkin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := load(t, tt.raw)
			assert.Equal(t, tt.wantActive, s.ActiveSkin)
			assert.True(t, s.Skins[domain.StarterSkin].Owned)
			assert.Len(t, s.Skins, len(catalog.Skins()))
		})
	}
}

func TestReconcile_Rewards(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		click   []domain.RewardID
		visual  []domain.RewardID
		bonus   []domain.RewardID
		special []domain.RewardID
	}{
		{
			name:    "classified from flat list",
			raw:     `{"unlockedRewards": ["basic-1", "basic-3", "basic-4", "premium-5", "bogus"]}`,
			click:   []domain.RewardID{"basic-1"},
			visual:  []domain.RewardID{"basic-3"},
			bonus:   []domain.RewardID{"basic-4"},
			special: []domain.RewardID{"premium-5"},
		},
		{
			name:    "buckets win over flat list",
			raw:     `{"unlockedRewards": ["basic-1"], "bonusEffects": ["legendary-3", "legendary-3"]}`,
			click:   []domain.RewardID{},
			visual:  []domain.RewardID{},
			bonus:   []domain.RewardID{"legendary-3", "legendary-3"},
			special: []domain.RewardID{},
		},
		{
			name:    "misfiled bucket entry is reclassified",
			raw:     `{"clickEffects": ["elite-5"]}`,
			click:   []domain.RewardID{},
			visual:  []domain.RewardID{},
			bonus:   []domain.RewardID{},
			special: []domain.RewardID{"elite-5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := load(t, tt.raw)
			assert.Equal(t, tt.click, s.ClickEffects)
			assert.Equal(t, tt.visual, s.VisualEffects)
			assert.Equal(t, tt.bonus, s.BonusEffects)
			assert.Equal(t, tt.special, s.SpecialEffects)
		})
	}
}

func TestReconcile_AntiEffects(t *testing.T) {
	s := load(t, `{"activeAntiEffects": [
		{"id": "virus", "severity": 0.9, "fixCost": 1},
		{"id": "virus"},
		{"id": "memory-leak", "timeRemaining": 45},
		{"id": "ddos", "timeRemaining": 999},
		{"id": "click-button-block", "fixCost": 4321},
		{"id": "doubleValue-block", "fixCost": 50},
		{"id": "alien-relay"}
	]}`)

	require.Len(t, s.ActiveAntiEffects, 5)
	byID := map[string]domain.AntiEffect{}
	for _, a := range s.ActiveAntiEffects {
		byID[a.ID] = a
		assert.True(t, a.Applied)
	}

	assert.Equal(t, 0.3, byID["virus"].Severity, "static effects come from the catalog")
	assert.Equal(t, 5000.0, byID["virus"].FixCost)
	assert.Equal(t, 45, byID["memory-leak"].TimeRemaining)
	assert.Equal(t, 60, byID["ddos"].TimeRemaining, "out of range timers restart")
	assert.Equal(t, 4321.0, byID[domain.AntiEffectClickButtonBlock].FixCost)
	assert.Equal(t, 50.0, byID["doubleValue-block"].FixCost)
	assert.Equal(t, domain.UpgradeDoubleValue, byID["doubleValue-block"].TargetUpgrade)
	assert.True(t, s.ClickBlocked)
}

func TestReconcile_Defaults(t *testing.T) {
	s := load(t, `{"moneyPerClick": 0, "playerName": "", "language": "klingon", "unlockedCases": ["elite", "mystery"], "casesOpened": {"basic": 4, "mystery": 2}}`)

	assert.Equal(t, 1.0, s.MoneyPerClick)
	assert.Equal(t, domain.DefaultPlayerName, s.PlayerName)
	assert.Equal(t, domain.LanguageEnglish, s.Language)
	assert.Equal(t, []domain.CaseTier{domain.CaseBasic, domain.CaseElite}, s.UnlockedCases)
	assert.Equal(t, 4, s.CasesOpened[domain.CaseBasic])
	assert.Len(t, s.CasesOpened, len(catalog.Cases()))
	assert.False(t, s.ClickBlocked)
	assert.True(t, s.LastSaved.IsZero())
}

func TestReconcile_LanguageTags(t *testing.T) {
	assert.Equal(t, domain.LanguageUkrainian, load(t, `{"language": "uk-UA"}`).Language)
	assert.Equal(t, domain.LanguageEnglish, load(t, `{"language": "en-GB"}`).Language)
}

func TestOfflineEarnings_NeverSaved(t *testing.T) {
	s := catalog.NewPlayerState()
	s.Upgrades[domain.UpgradePassiveIncome] = domain.UpgradeState{Level: 5}
	s.Upgrades[domain.UpgradeOfflineEarnings] = domain.UpgradeState{Level: 5}

	assert.Zero(t, OfflineEarnings(s, time.Now()))
}

func TestNewSnapshot_WritesFlatRewards(t *testing.T) {
	s := progressedState()

	snap := NewSnapshot(s, epoch)

	assert.Equal(t, []string{"basic-1", "basic-4", "basic-4", "premium-5"}, snap.UnlockedRewards)
	assert.Equal(t, epoch.UnixMilli(), snap.LastSaved)
}
