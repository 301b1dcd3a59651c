// Package modifier maps case rewards to the gameplay values they change.
package modifier

import (
	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// Kind defines which value a reward modifies and how stacked values combine
type Kind string

const (
	// IncomeMultiplier scales every AddMoney amount
	IncomeMultiplier Kind = "income_multiplier"
	// PassiveMultiplier scales the passive income rate
	PassiveMultiplier Kind = "passive_multiplier"
	// AutoSpeedMultiplier scales the auto-clicker rate
	AutoSpeedMultiplier Kind = "auto_speed_multiplier"
	// UpgradeDiscount scales upgrade costs (0.85 = 15% off)
	UpgradeDiscount Kind = "upgrade_discount"
	// CritChanceBonus is added to the critical click chance
	CritChanceBonus Kind = "crit_chance_bonus"
	// DoubleClickChance is the chance of doubling a manual click
	DoubleClickChance Kind = "double_click_chance"
)

// Additive reports whether values of the kind are summed instead of multiplied
func (k Kind) Additive() bool {
	return k == CritChanceBonus || k == DoubleClickChance
}

// Modifier is one effect of a reward
type Modifier struct {
	Kind  Kind
	Value float64
}

// Table is the typed reward -> effect mapping. Rewards not listed are purely cosmetic.
var Table = map[domain.RewardID][]Modifier{
	catalog.RewardLuckyCharm:       {{Kind: CritChanceBonus, Value: 0.05}},
	catalog.RewardCreditBoost:      {{Kind: IncomeMultiplier, Value: 1.10}},
	catalog.RewardTimeWarp:         {{Kind: AutoSpeedMultiplier, Value: 1.2}},
	catalog.RewardEfficiencyModule: {{Kind: UpgradeDiscount, Value: 0.85}},
	catalog.RewardTemporalShift:    {{Kind: DoubleClickChance, Value: 0.05}},
	catalog.RewardGoldenTouch:      {{Kind: IncomeMultiplier, Value: 1.25}, {Kind: PassiveMultiplier, Value: 1.25}},
	catalog.RewardTimeDilation:     {{Kind: AutoSpeedMultiplier, Value: 1.3}},
}

// Set is the combined effect of a player's owned rewards.
// Owning a reward several times counts once.
type Set struct {
	values map[Kind]float64
	owned  map[domain.RewardID]struct{}
}

// Collect builds the set from the player's reward ids
func Collect(rewards []domain.RewardID) Set {
	s := Set{
		values: make(map[Kind]float64),
		owned:  make(map[domain.RewardID]struct{}, len(rewards)),
	}
	for _, id := range rewards {
		if _, seen := s.owned[id]; seen {
			continue
		}
		s.owned[id] = struct{}{}
		for _, m := range Table[id] {
			s.apply(m)
		}
	}
	return s
}

// ForState collects every reward bucket of the player
func ForState(state *domain.PlayerState) Set {
	return Collect(state.AllRewards())
}

func (s Set) apply(m Modifier) {
	cur, ok := s.values[m.Kind]
	switch {
	case !ok:
		s.values[m.Kind] = m.Value
	case m.Kind.Additive():
		s.values[m.Kind] = cur + m.Value
	default:
		s.values[m.Kind] = cur * m.Value
	}
}

// Value returns the combined value of a kind: 1 for absent multipliers, 0 for absent bonuses
func (s Set) Value(k Kind) float64 {
	if v, ok := s.values[k]; ok {
		return v
	}
	if k.Additive() {
		return 0
	}
	return 1
}

// Has reports whether the reward is owned
func (s Set) Has(id domain.RewardID) bool {
	_, ok := s.owned[id]
	return ok
}

func (s Set) Income() float64            { return s.Value(IncomeMultiplier) }
func (s Set) Passive() float64           { return s.Value(PassiveMultiplier) }
func (s Set) AutoSpeed() float64         { return s.Value(AutoSpeedMultiplier) }
func (s Set) Discount() float64          { return s.Value(UpgradeDiscount) }
func (s Set) CritBonus() float64         { return s.Value(CritChanceBonus) }
func (s Set) DoubleClickChance() float64 { return s.Value(DoubleClickChance) }
