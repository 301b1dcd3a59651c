package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerState_Clone_IsDeep(t *testing.T) {
	// ARRANGE
	orig := &PlayerState{
		Upgrades:          map[UpgradeID]UpgradeState{UpgradeDoubleValue: {Level: 2, Owned: true}},
		Skins:             map[SkinID]SkinState{StarterSkin: {Owned: true}},
		ActiveAntiEffects: []AntiEffect{{ID: "virus"}},
		BonusEffects:      []RewardID{"basic-4"},
		CasesOpened:       map[CaseTier]int{CaseBasic: 3},
		UnlockedCases:     []CaseTier{CaseBasic},
	}

	// ACT
	c := orig.Clone()
	c.Upgrades[UpgradeDoubleValue] = UpgradeState{Level: 9}
	c.ActiveAntiEffects[0].ID = "glitch"
	c.BonusEffects[0] = "elite-3"
	c.CasesOpened[CaseBasic] = 10
	c.UnlockedCases[0] = CasePremium

	// ASSERT
	assert.Equal(t, 2, orig.Level(UpgradeDoubleValue))
	assert.Equal(t, "virus", orig.ActiveAntiEffects[0].ID)
	assert.Equal(t, RewardID("basic-4"), orig.BonusEffects[0])
	assert.Equal(t, 3, orig.CasesOpened[CaseBasic])
	assert.True(t, orig.CaseUnlocked(CaseBasic))
}

func TestPlayerState_Penalty(t *testing.T) {
	p := &PlayerState{ActiveAntiEffects: []AntiEffect{
		{ID: "virus", Type: AntiEffectClick, Severity: 0.3},
		{ID: "ddos", Type: AntiEffectIncome, Severity: 0.2},
		{ID: "malware", Type: AntiEffectAuto, Severity: 0.5},
	}}

	assert.InDelta(t, 0.7*0.8, p.Penalty(AntiEffectClick, AntiEffectIncome), 1e-9)
	assert.InDelta(t, 0.8, p.Penalty(AntiEffectIncome), 1e-9)
	assert.InDelta(t, 1.0, p.Penalty(AntiEffectPassive), 1e-9)
}

func TestPlayerState_AntiEffectLookups(t *testing.T) {
	p := &PlayerState{ActiveAntiEffects: []AntiEffect{
		{ID: "auto-hack-block", Type: AntiEffectUpgrade, TargetUpgrade: UpgradeAutoClicker},
	}}

	assert.True(t, p.HasAntiEffect("auto-hack-block"))
	assert.False(t, p.HasAntiEffect("virus"))
	assert.True(t, p.HasAntiEffectType(AntiEffectUpgrade))
	assert.True(t, p.UpgradeBlocked(UpgradeAutoClicker))
	assert.False(t, p.UpgradeBlocked(UpgradeDoubleValue))
}

func TestPlayerState_AllRewards(t *testing.T) {
	p := &PlayerState{
		ClickEffects:   []RewardID{"basic-1"},
		VisualEffects:  []RewardID{"basic-3"},
		BonusEffects:   []RewardID{"basic-4", "basic-4"},
		SpecialEffects: []RewardID{"elite-5"},
	}

	assert.Equal(t, []RewardID{"basic-1", "basic-3", "basic-4", "basic-4", "elite-5"}, p.AllRewards())
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(fmt.Errorf("%w: doubleValue", ErrInsufficientFunds)))
	assert.True(t, IsRejection(ErrOnCooldown))
	assert.False(t, IsRejection(ErrDatabaseError))
	assert.False(t, IsRejection(errors.New("boom")))
}
