package game

import (
	"fmt"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/prestige"
)

// Prestige trades the current epoch's earnings for robocoins and resets progress.
// Skins, case rewards and custom themes survive.
func (e *Engine) Prestige() (float64, error) {
	e.resetCombo()
	s := e.state

	if err := prestige.Check(s); err != nil {
		return 0, e.reject(domain.NotifyPrestigeRejected, err)
	}

	gain := prestige.RobocoinsGain(s.TotalEarned)
	first := s.PrestigeCount == 0

	s.Robocoins += gain
	s.TotalRobocoins += gain
	s.PrestigeCount++

	s.Money = 0
	s.TotalEarned = 0
	s.ClickCount = 0
	s.MoneyPerClick = 1 * prestige.BonusMultiplier(s.Robocoins)
	s.Upgrades = catalog.FreshUpgrades()
	e.clearAntiEffects()
	s.TemporaryMultiplier = 1
	s.MultiplierTimeLeft = 0
	s.UnlockedCases = []domain.CaseTier{domain.CaseBasic}
	s.CasesOpened = catalog.FreshCaseCounters()
	s.AdvancedNotified = false
	s.SpecialNotified = false

	e.notify(domain.NotifyPrestige, domain.SeveritySuccess,
		fmt.Sprintf("Prestige complete! +%.2f robocoins", gain),
		map[string]interface{}{"gain": gain, "robocoins": s.Robocoins, "prestigeCount": s.PrestigeCount})
	if first {
		e.notify(domain.NotifyThemesUnlocked, domain.SeveritySuccess, "Custom themes unlocked!", nil)
	}
	e.requestSave()
	return gain, nil
}
