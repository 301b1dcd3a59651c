package game

import (
	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
	"github.com/osse101/CyberClicker_Go/internal/prestige"
)

// UpgradeView is an upgrade with the player's derived purchase data
type UpgradeView struct {
	domain.Upgrade
	Level     int     `json:"level"`
	NextCost  float64 `json:"nextCost"`
	Blocked   bool    `json:"blocked"`
	Available bool    `json:"available"`
}

// View is a read-only snapshot of the state plus everything derived from it
type View struct {
	State            *domain.PlayerState `json:"state"`
	MoneyFormatted   string              `json:"moneyFormatted"`
	TotalFormatted   string              `json:"totalEarnedFormatted"`
	Upgrades         []UpgradeView       `json:"upgrades"`
	AutoClickerRate  float64             `json:"autoClickerRate"`
	PassiveRate      float64             `json:"passiveRate"`
	CritChance       float64             `json:"critChance"`
	AdvancedUnlocked bool                `json:"advancedUnlocked"`
	SpecialUnlocked  bool                `json:"specialUnlocked"`
	Prestige         prestige.Summary    `json:"prestige"`
}

// View builds the derived view of the current state
func (e *Engine) View() View {
	s := e.state
	v := View{
		State:            s.Clone(),
		MoneyFormatted:   format.Number(s.Money),
		TotalFormatted:   format.Number(s.TotalEarned),
		AutoClickerRate:  e.AutoClickerRate(),
		PassiveRate:      e.PassiveRate(),
		CritChance:       e.CritChance(),
		AdvancedUnlocked: e.CategoryUnlocked(domain.CategoryAdvanced),
		SpecialUnlocked:  e.CategoryUnlocked(domain.CategorySpecial),
		Prestige:         prestige.Preview(s),
	}

	ransomware := s.HasAntiEffect(domain.AntiEffectRansomware)
	for _, u := range catalog.Upgrades() {
		cost, _ := e.UpgradeCost(u.ID)
		v.Upgrades = append(v.Upgrades, UpgradeView{
			Upgrade:   u,
			Level:     s.Level(u.ID),
			NextCost:  cost,
			Blocked:   ransomware || s.UpgradeBlocked(u.ID),
			Available: e.CategoryUnlocked(u.Category),
		})
	}
	return v
}
