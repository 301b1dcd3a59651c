// Package antieffect rolls the random negative effects that degrade production.
package antieffect

import (
	"fmt"
	"math"
	"slices"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// Progress thresholds for the eligibility filter
const (
	EarlyGameThreshold = 50_000
	MidGameThreshold   = 500_000
)

var (
	earlyGameOnly    = []string{"virus", "glitch"}
	midGameExcluded  = []string{domain.AntiEffectRansomware, "system-slowdown"}
	maxTriggerChance = 0.05
)

// Selector picks anti-effects using an injected random source
type Selector struct {
	rnd func() float64
}

// NewSelector creates a selector. A nil source uses utils.RandomFloat.
func NewSelector(rnd func() float64) *Selector {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Selector{rnd: rnd}
}

// TrySelect rolls chance and, on success, picks one eligible effect that is not already active.
// The returned effect is marked applied and has its timer seeded.
func (s *Selector) TrySelect(active []domain.AntiEffect, totalEarned, chance float64, dynamic []domain.AntiEffect) (domain.AntiEffect, bool) {
	if !utils.Roll(s.rnd, chance) {
		return domain.AntiEffect{}, false
	}

	pool := Eligible(active, totalEarned, dynamic)
	idx := utils.PickIndex(s.rnd, len(pool))
	if idx < 0 {
		return domain.AntiEffect{}, false
	}

	picked := pool[idx]
	picked.Applied = true
	if picked.Timed() {
		picked.TimeRemaining = picked.Duration
	}
	return picked, true
}

// Eligible returns the candidate pool after dropping active ids and applying the progress filter
func Eligible(active []domain.AntiEffect, totalEarned float64, dynamic []domain.AntiEffect) []domain.AntiEffect {
	isActive := func(id string) bool {
		return slices.ContainsFunc(active, func(a domain.AntiEffect) bool { return a.ID == id })
	}

	candidates := append(catalog.AntiEffects(), dynamic...)
	pool := make([]domain.AntiEffect, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.ID]; dup || isActive(c.ID) {
			continue
		}
		seen[c.ID] = struct{}{}

		switch {
		case totalEarned < EarlyGameThreshold:
			if !slices.Contains(earlyGameOnly, c.ID) {
				continue
			}
		case totalEarned < MidGameThreshold:
			if slices.Contains(midGameExcluded, c.ID) {
				continue
			}
		}
		pool = append(pool, c)
	}
	return pool
}

// Dynamic builds the effects whose fix cost depends on the player's current money:
// the click lockout and one block per owned upgrade.
func Dynamic(state *domain.PlayerState) []domain.AntiEffect {
	out := []domain.AntiEffect{{
		ID:          domain.AntiEffectClickButtonBlock,
		Name:        "Click Button Block",
		Description: "Blocks the click button completely",
		Type:        domain.AntiEffectClick,
		Severity:    1,
		FixCost:     math.Max(100, math.Floor(state.Money*0.1)),
		Duration:    domain.DurationUntilFixed,
	}}

	for _, u := range catalog.Upgrades() {
		if state.Level(u.ID) == 0 {
			continue
		}
		out = append(out, domain.AntiEffect{
			ID:            BlockID(u.ID),
			Name:          fmt.Sprintf("%s Block", u.Name),
			Description:   fmt.Sprintf("Blocks the %s upgrade effect", u.Name),
			Type:          domain.AntiEffectUpgrade,
			TargetUpgrade: u.ID,
			Severity:      1,
			FixCost:       math.Max(u.BaseCost, math.Floor(state.Money*0.05)),
			Duration:      domain.DurationUntilFixed,
		})
	}
	return out
}

// BlockID is the id of the dynamic block for an upgrade
func BlockID(id domain.UpgradeID) string {
	return string(id) + "-block"
}

// ClickChance is the per-click trigger chance
func ClickChance(totalEarned float64) float64 {
	return math.Min(maxTriggerChance, 0.01+totalEarned/1e9*0.01)
}

// TimerChance is the trigger chance of the periodic check
func TimerChance(totalEarned float64) float64 {
	return math.Min(maxTriggerChance, 0.005*(1+totalEarned/1e7))
}

// Definition resolves a saved anti-effect id to its static or dynamic definition.
// Dynamic definitions carry the fix cost a zero-money player would pay.
func Definition(id string) (domain.AntiEffect, bool) {
	if a, ok := catalog.AntiEffect(id); ok {
		return a, true
	}
	sample := catalog.NewPlayerState()
	for upgradeID := range sample.Upgrades {
		sample.Upgrades[upgradeID] = domain.UpgradeState{Level: 1, Owned: true}
	}
	for _, a := range Dynamic(sample) {
		if a.ID == id {
			return a, true
		}
	}
	return domain.AntiEffect{}, false
}
