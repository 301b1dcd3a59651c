package game

import (
	"fmt"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// WheelResult describes one fortune wheel spin
type WheelResult struct {
	Prize    domain.WheelPrize `json:"prize"`
	Special  string            `json:"special,omitempty"`
	Credited float64           `json:"credited,omitempty"`
}

var specialOutcomes = []string{SpecialLuckyDay, SpecialShield, SpecialCleanup}

// SpinWheel draws a prize uniformly and applies it. Cooldowns are enforced by the caller.
func (e *Engine) SpinWheel() WheelResult {
	e.resetCombo()
	prizes := catalog.WheelPrizes()
	prize := prizes[utils.PickIndex(e.rnd, len(prizes))]
	res := WheelResult{Prize: prize}

	switch prize.Type {
	case domain.PrizeMoney:
		res.Credited = e.AddMoney(prize.Value)
		e.notifyPrize(prize, fmt.Sprintf("You won %s!", format.Number(prize.Value)))

	case domain.PrizeMultiplier:
		seconds := TripleMultiplierSeconds
		if prize.Value == 2 {
			seconds = DoubleMultiplierSeconds
		}
		e.setMultiplier(prize.Value, seconds)
		e.notifyPrize(prize, fmt.Sprintf("%gx multiplier for %d seconds!", prize.Value, seconds))

	case domain.PrizeBoost:
		if e.state.Level(domain.UpgradeAutoClicker) > 0 {
			e.setMultiplier(prize.Value, BoostSeconds)
			e.notifyPrize(prize, fmt.Sprintf("Boost: +%.0f%% for 2 minutes!", (prize.Value-1)*100))
		} else {
			res.Credited = e.AddMoney(NoAutoClickerBonus)
			e.notifyPrize(prize, "No auto hack to boost, received 2,000 credits instead")
		}

	case domain.PrizeSpecial:
		res.Special = specialOutcomes[utils.PickIndex(e.rnd, len(specialOutcomes))]
		switch res.Special {
		case SpecialLuckyDay:
			e.setMultiplier(LuckyDayMultiplier, LuckyDaySeconds)
			e.notifyPrize(prize, "Lucky day! 5x multiplier for 30 seconds")
		case SpecialShield:
			e.grantShield(WheelShieldSeconds)
			e.notifyPrize(prize, "Anti-effect shield active for 5 minutes")
		case SpecialCleanup:
			if len(e.state.ActiveAntiEffects) > 0 {
				e.clearAntiEffects()
				e.notifyPrize(prize, "System cleanup: all anti-effects removed")
			} else {
				res.Special = SpecialCleanupBonus
				res.Credited = e.AddMoney(CleanupBonus)
				e.notifyPrize(prize, "No anti-effects to clean, received 5,000 credits instead")
			}
		}
	}
	return res
}

func (e *Engine) notifyPrize(prize domain.WheelPrize, message string) {
	e.notify(domain.NotifyWheelPrize, domain.SeveritySuccess, message,
		map[string]interface{}{"prize": prize.ID, "type": prize.Type})
}
