package game

import (
	"fmt"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// AutoClickerRate is the number of automatic clicks per second
func (e *Engine) AutoClickerRate() float64 {
	s := e.state
	level := s.Level(domain.UpgradeAutoClicker)
	if level == 0 || s.UpgradeBlocked(domain.UpgradeAutoClicker) {
		return 0
	}

	rate := float64(level)
	if speed := s.Level(domain.UpgradeAutoClickerSpeed); speed > 0 && !s.UpgradeBlocked(domain.UpgradeAutoClickerSpeed) {
		rate += float64(speed) * mustUpgrade(domain.UpgradeAutoClickerSpeed).Effect
	}
	rate *= e.modifiers().AutoSpeed()
	return rate * s.Penalty(domain.AntiEffectAuto)
}

// TickAutoClicker performs one automatic click
func (e *Engine) TickAutoClicker() float64 {
	if e.AutoClickerRate() <= 0 {
		return 0
	}
	s := e.state
	credited := e.AddMoney(s.MoneyPerClick * s.TemporaryMultiplier * s.Penalty(domain.AntiEffectIncome))
	s.ClickCount++
	return credited
}

// PassiveRate is the passive income per second before AddMoney multipliers
func (e *Engine) PassiveRate() float64 {
	s := e.state
	level := s.Level(domain.UpgradePassiveIncome)
	if level == 0 || s.UpgradeBlocked(domain.UpgradePassiveIncome) || s.HasAntiEffectType(domain.AntiEffectPassive) {
		return 0
	}
	rate := float64(level) * mustUpgrade(domain.UpgradePassiveIncome).Effect
	return rate * e.modifiers().Passive()
}

// TickPassive credits one second of passive income
func (e *Engine) TickPassive() float64 {
	rate := e.PassiveRate()
	if rate <= 0 {
		return 0
	}
	s := e.state
	return e.AddMoney(rate * s.TemporaryMultiplier * s.Penalty(domain.AntiEffectIncome))
}

// TickSecond advances every one-second timer: passive income, combo decay,
// the temporary multiplier, the shield and timed anti-effects.
func (e *Engine) TickSecond() {
	e.TickPassive()

	s := e.state
	if s.ComboCount > 0 {
		s.ComboTimer--
		if s.ComboTimer <= 0 {
			e.resetCombo()
		}
	}

	if s.MultiplierTimeLeft > 0 {
		s.MultiplierTimeLeft--
		if s.MultiplierTimeLeft == 0 {
			s.TemporaryMultiplier = 1
		}
	}

	if s.ShieldTimeLeft > 0 {
		s.ShieldTimeLeft--
		if s.ShieldTimeLeft == 0 {
			s.ShieldActive = false
			e.notify(domain.NotifyShield, domain.SeverityInfo, "Anti-effect shield expired", nil)
		}
	}

	kept := s.ActiveAntiEffects[:0]
	for _, a := range s.ActiveAntiEffects {
		if a.Timed() && a.TimeRemaining > 0 {
			a.TimeRemaining--
		}
		if a.Timed() && a.TimeRemaining <= 0 {
			e.notify(domain.NotifyAntiEffectExpired, domain.SeverityInfo,
				fmt.Sprintf("%s wore off", displayName(a)), map[string]interface{}{"id": a.ID})
			continue
		}
		kept = append(kept, a)
	}
	s.ActiveAntiEffects = kept
}
