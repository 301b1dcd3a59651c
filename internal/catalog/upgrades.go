// Package catalog holds the static game configuration: upgrades, skins, cases,
// wheel prizes and anti-effects. Nothing here is persisted.
package catalog

import "github.com/osse101/CyberClicker_Go/internal/domain"

// Requirement is a minimum upgrade level
type Requirement struct {
	Upgrade domain.UpgradeID
	Level   int
}

var upgrades = []domain.Upgrade{
	{ID: domain.UpgradeDoubleValue, Name: "Click Value", Description: "Increase your credits per click by 1",
		BaseCost: 10, CostMultiplier: 1.5, Effect: 1, EffectMultiplier: 1.5, Category: domain.CategoryBasic},
	{ID: domain.UpgradeAutoClicker, Name: "Auto Hack", Description: "Automatically clicks once per second",
		BaseCost: 50, CostMultiplier: 1.6, Effect: 1, EffectMultiplier: 1, Category: domain.CategoryBasic},
	{ID: domain.UpgradeCriticalClick, Name: "Critical Hack", Description: "Chance to get 5x credits on click",
		BaseCost: 100, CostMultiplier: 1.7, Effect: 0.05, EffectMultiplier: 1.2, Category: domain.CategoryBasic},
	{ID: domain.UpgradePassiveIncome, Name: "Passive Income", Description: "Earn credits over time without clicking",
		BaseCost: 200, CostMultiplier: 1.8, Effect: 0.5, EffectMultiplier: 1.3, Category: domain.CategoryBasic},
	{ID: domain.UpgradeClickMultiplier, Name: "Click Multiplier", Description: "Multiply your click value",
		BaseCost: 100000, CostMultiplier: 1.9, Effect: 1.5, EffectMultiplier: 1.1, Category: domain.CategoryAdvanced, UnlockCost: 200000},
	{ID: domain.UpgradeAutoClickerSpeed, Name: "Auto Speed", Description: "Increase auto hack speed",
		BaseCost: 250000, CostMultiplier: 2.0, Effect: 1, EffectMultiplier: 1.2, Category: domain.CategoryAdvanced, UnlockCost: 200000},
	{ID: domain.UpgradeClickCombo, Name: "Click Combo", Description: "Consecutive clicks increase value",
		BaseCost: 500000, CostMultiplier: 2.1, Effect: 0.1, EffectMultiplier: 1.1, Category: domain.CategoryAdvanced, UnlockCost: 200000},
	{ID: domain.UpgradeOfflineEarnings, Name: "Offline Earnings", Description: "Earn credits while away",
		BaseCost: 1000000, CostMultiplier: 2.2, Effect: 0.1, EffectMultiplier: 1.2, Category: domain.CategoryAdvanced, UnlockCost: 200000},
	{ID: domain.UpgradeLuckyClicks, Name: "Lucky Clicks", Description: "Random chance for bonus credits",
		BaseCost: 2500000, CostMultiplier: 2.3, Effect: 0.02, EffectMultiplier: 1.3, Category: domain.CategorySpecial, UnlockCost: 5000000},
	{ID: domain.UpgradeMegaClick, Name: "Mega Click", Description: "Special ability: massive click value",
		BaseCost: 5000000, CostMultiplier: 2.5, Effect: 10, EffectMultiplier: 1.5, Category: domain.CategorySpecial, UnlockCost: 5000000},
}

// AdvancedRequirements unlock the advanced category
var AdvancedRequirements = []Requirement{
	{domain.UpgradeDoubleValue, 15},
	{domain.UpgradeAutoClicker, 10},
	{domain.UpgradeCriticalClick, 5},
	{domain.UpgradePassiveIncome, 1},
}

// SpecialRequirements unlock the special category, on top of AdvancedRequirements
var SpecialRequirements = []Requirement{
	{domain.UpgradeClickMultiplier, 10},
	{domain.UpgradeAutoClickerSpeed, 8},
	{domain.UpgradeClickCombo, 5},
	{domain.UpgradeOfflineEarnings, 3},
}

var upgradeIndex = indexBy(upgrades, func(u domain.Upgrade) domain.UpgradeID { return u.ID })

// Upgrades returns every upgrade in display order
func Upgrades() []domain.Upgrade {
	return append([]domain.Upgrade(nil), upgrades...)
}

// Upgrade looks up one upgrade
func Upgrade(id domain.UpgradeID) (domain.Upgrade, bool) {
	i, ok := upgradeIndex[id]
	if !ok {
		return domain.Upgrade{}, false
	}
	return upgrades[i], true
}

// Met reports whether every requirement is satisfied by the levels in state
func Met(state *domain.PlayerState, reqs []Requirement) bool {
	for _, r := range reqs {
		if state.Level(r.Upgrade) < r.Level {
			return false
		}
	}
	return true
}

func indexBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	m := make(map[K]int, len(items))
	for i, it := range items {
		m[key(it)] = i
	}
	return m
}
