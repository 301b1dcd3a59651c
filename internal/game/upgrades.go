package game

import (
	"fmt"
	"math"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
)

// UpgradeCost is the price of the next level of an upgrade
func (e *Engine) UpgradeCost(id domain.UpgradeID) (float64, error) {
	u, ok := catalog.Upgrade(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, id)
	}
	cost := math.Floor(u.BaseCost * math.Pow(u.CostMultiplier, float64(e.state.Level(id))))
	if discount := e.modifiers().Discount(); discount != 1 {
		cost = math.Floor(cost * discount)
	}
	return cost, nil
}

// CategoryUnlocked reports whether upgrades of the category can be bought
func (e *Engine) CategoryUnlocked(c domain.UpgradeCategory) bool {
	switch c {
	case domain.CategoryBasic:
		return true
	case domain.CategoryAdvanced:
		return catalog.Met(e.state, catalog.AdvancedRequirements)
	case domain.CategorySpecial:
		return catalog.Met(e.state, catalog.AdvancedRequirements) && catalog.Met(e.state, catalog.SpecialRequirements)
	default:
		return false
	}
}

// BuyUpgrade buys the next level of an upgrade and returns what it cost
func (e *Engine) BuyUpgrade(id domain.UpgradeID) (float64, error) {
	e.resetCombo()
	s := e.state

	u, ok := catalog.Upgrade(id)
	if !ok {
		return 0, e.reject(domain.NotifyUpgradeRejected, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, id))
	}
	if s.HasAntiEffect(domain.AntiEffectRansomware) {
		return 0, e.reject(domain.NotifyUpgradeRejected, domain.ErrUpgradesLocked)
	}
	if s.UpgradeBlocked(id) {
		return 0, e.reject(domain.NotifyUpgradeRejected, fmt.Errorf("%w: %s", domain.ErrUpgradeBlocked, u.Name))
	}
	if !e.CategoryUnlocked(u.Category) {
		return 0, e.reject(domain.NotifyUpgradeRejected, fmt.Errorf("%w: %s", domain.ErrCategoryLocked, u.Category))
	}
	cost, _ := e.UpgradeCost(id)
	if s.Money < cost {
		return 0, e.reject(domain.NotifyUpgradeRejected,
			fmt.Errorf("%w: %s costs %s", domain.ErrInsufficientFunds, u.Name, format.Number(cost)))
	}

	previous := s.Level(id)
	s.Money -= cost
	s.Upgrades[id] = domain.UpgradeState{Level: previous + 1, Owned: true}

	switch id {
	case domain.UpgradeDoubleValue:
		s.MoneyPerClick += u.Effect
	case domain.UpgradeClickMultiplier:
		s.MoneyPerClick *= u.Effect
	}

	message := fmt.Sprintf("%s upgraded to level %d", u.Name, previous+1)
	if previous == 0 && u.Category != domain.CategoryBasic {
		message = fmt.Sprintf("First %s upgrade purchased: %s", u.Category, u.Name)
	}
	e.notify(domain.NotifyUpgradePurchased, domain.SeveritySuccess, message,
		map[string]interface{}{"id": id, "level": previous + 1, "cost": cost})

	if cost > SignificantPurchaseCost {
		e.requestSave()
	}
	return cost, nil
}
