package game

import (
	"fmt"
	"slices"

	"github.com/osse101/CyberClicker_Go/internal/antieffect"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
)

// rollAntiEffect runs one trigger with the given chance and applies the result
func (e *Engine) rollAntiEffect(chance float64) (domain.AntiEffect, bool) {
	s := e.state
	picked, ok := e.selector.TrySelect(s.ActiveAntiEffects, s.TotalEarned, chance, antieffect.Dynamic(s))
	if !ok {
		return domain.AntiEffect{}, false
	}
	e.applyAntiEffect(picked)
	return picked, true
}

func (e *Engine) applyAntiEffect(a domain.AntiEffect) {
	s := e.state
	if s.HasAntiEffect(a.ID) {
		return
	}
	s.ActiveAntiEffects = append(s.ActiveAntiEffects, a)
	if a.ID == domain.AntiEffectClickButtonBlock {
		s.ClickBlocked = true
	}
	e.notify(domain.NotifyAntiEffectApplied, domain.SeverityError,
		fmt.Sprintf("Problem detected: %s", displayName(a)),
		map[string]interface{}{"id": a.ID, "fixCost": a.FixCost})
}

// TickAntiEffectCheck is the periodic trigger. It does nothing while the shield is up.
func (e *Engine) TickAntiEffectCheck() (domain.AntiEffect, bool) {
	if e.state.ShieldActive {
		return domain.AntiEffect{}, false
	}
	return e.rollAntiEffect(antieffect.TimerChance(e.state.TotalEarned))
}

// FixAntiEffect pays off an active anti-effect
func (e *Engine) FixAntiEffect(id string) error {
	e.resetCombo()
	s := e.state

	idx := slices.IndexFunc(s.ActiveAntiEffects, func(a domain.AntiEffect) bool { return a.ID == id })
	if idx < 0 {
		return e.reject(domain.NotifyAntiEffectRejected, fmt.Errorf("%w: %s", domain.ErrAntiEffectNotActive, id))
	}
	effect := s.ActiveAntiEffects[idx]
	if s.Money < effect.FixCost {
		return e.reject(domain.NotifyAntiEffectRejected,
			fmt.Errorf("%w: fixing %s costs %s", domain.ErrInsufficientFunds, displayName(effect), format.Number(effect.FixCost)))
	}

	s.Money -= effect.FixCost
	s.ActiveAntiEffects = slices.Delete(s.ActiveAntiEffects, idx, idx+1)
	if id == domain.AntiEffectClickButtonBlock {
		s.ClickBlocked = false
	}

	e.notify(domain.NotifyAntiEffectFixed, domain.SeveritySuccess,
		fmt.Sprintf("Problem fixed: %s", displayName(effect)),
		map[string]interface{}{"id": id, "cost": effect.FixCost})
	return nil
}

// clearAntiEffects removes every active effect and lifts the click lockout
func (e *Engine) clearAntiEffects() {
	e.state.ActiveAntiEffects = []domain.AntiEffect{}
	e.state.ClickBlocked = false
}
