package game

import (
	"math"

	"github.com/osse101/CyberClicker_Go/internal/antieffect"
	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// ClickResult describes what one manual click produced
type ClickResult struct {
	Earned        float64            `json:"earned"`
	Critical      bool               `json:"critical"`
	Lucky         bool               `json:"lucky"`
	Mega          bool               `json:"mega"`
	TemporalShift bool               `json:"temporalShift"`
	Combo         int                `json:"combo"`
	AntiEffect    *domain.AntiEffect `json:"antiEffect,omitempty"`
}

// Click resolves one manual click
func (e *Engine) Click() (ClickResult, error) {
	s := e.state
	if s.ClickBlocked {
		return ClickResult{}, e.reject(domain.NotifyClickBlocked, domain.ErrClickBlocked)
	}

	mods := e.modifiers()
	var res ClickResult

	multiplier := 1.0
	if lvl := s.Level(domain.UpgradeClickCombo); lvl > 0 &&
		!s.HasAntiEffectType(domain.AntiEffectCombo) && !s.UpgradeBlocked(domain.UpgradeClickCombo) {
		combo := mustUpgrade(domain.UpgradeClickCombo)
		multiplier = 1 + float64(s.ComboCount)*float64(lvl)*combo.Effect
		s.ComboCount++
		s.ComboTimer = ComboWindowSeconds
	}
	res.Combo = s.ComboCount

	multiplier *= s.TemporaryMultiplier
	earned := s.MoneyPerClick * multiplier

	if !s.HasAntiEffectType(domain.AntiEffectCritical) && !s.UpgradeBlocked(domain.UpgradeCriticalClick) {
		if utils.Roll(e.rnd, e.CritChance()) {
			earned *= CriticalMultiplier
			res.Critical = true
		}
	}

	lucky := mustUpgrade(domain.UpgradeLuckyClicks)
	luckyChance := 0.0
	if !s.UpgradeBlocked(domain.UpgradeLuckyClicks) {
		luckyChance = float64(s.Level(domain.UpgradeLuckyClicks)) * lucky.Effect
	}
	if utils.Roll(e.rnd, luckyChance) {
		earned += math.Floor(earned * LuckyBonusFactor)
		res.Lucky = true
	}

	if lvl := s.Level(domain.UpgradeMegaClick); lvl > 0 && !s.UpgradeBlocked(domain.UpgradeMegaClick) {
		if utils.Roll(e.rnd, MegaClickChance) {
			earned *= float64(lvl) * mustUpgrade(domain.UpgradeMegaClick).Effect
			res.Mega = true
		}
	}

	if mods.Has(catalog.RewardTemporalShift) && utils.Roll(e.rnd, mods.DoubleClickChance()) {
		earned *= TemporalShiftMultiplier
		res.TemporalShift = true
	}

	earned *= s.Penalty(domain.AntiEffectClick, domain.AntiEffectIncome)

	res.Earned = e.AddMoney(earned)
	s.ClickCount++

	if !s.ShieldActive {
		if a, ok := e.rollAntiEffect(antieffect.ClickChance(s.TotalEarned)); ok {
			res.AntiEffect = &a
		}
	}
	return res, nil
}

// CritChance is the current chance of a critical click
func (e *Engine) CritChance() float64 {
	crit := mustUpgrade(domain.UpgradeCriticalClick)
	return float64(e.state.Level(domain.UpgradeCriticalClick))*crit.Effect + e.modifiers().CritBonus()
}

func mustUpgrade(id domain.UpgradeID) domain.Upgrade {
	u, ok := catalog.Upgrade(id)
	if !ok {
		panic("catalog is missing upgrade " + string(id))
	}
	return u
}
