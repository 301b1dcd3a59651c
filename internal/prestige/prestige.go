// Package prestige converts lifetime earnings into robocoins, the permanent multiplier currency.
package prestige

import (
	"fmt"
	"math"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

const (
	// EarningsPerRobocoinSquared scales totalEarned before the square root
	EarningsPerRobocoinSquared = 1e9
	// BonusPerRobocoin is the multiplier added by each robocoin
	BonusPerRobocoin = 0.1
	// MinimumGain is the smallest gain a prestige can be performed for
	MinimumGain = 0.01
)

// RobocoinsGain is floor(sqrt(totalEarned/1e9)*100)/100
func RobocoinsGain(totalEarned float64) float64 {
	if totalEarned <= 0 || math.IsNaN(totalEarned) {
		return 0
	}
	return math.Floor(math.Sqrt(totalEarned/EarningsPerRobocoinSquared)*100) / 100
}

// BonusMultiplier is the income multiplier granted by a robocoin balance
func BonusMultiplier(robocoins float64) float64 {
	return 1 + BonusPerRobocoin*robocoins
}

// Check returns the reason a prestige would be rejected, or nil.
// The first prestige also requires every upgrade bought and every skin owned.
func Check(state *domain.PlayerState) error {
	if state.PrestigeCount == 0 && (!catalog.AllUpgradesOwned(state) || !catalog.AllSkinsOwned(state)) {
		return domain.ErrPrestigeRequirements
	}
	if gain := RobocoinsGain(state.TotalEarned); gain < MinimumGain {
		return fmt.Errorf("%w: gain %.2f is below %.2f", domain.ErrNotEnoughProgress, gain, MinimumGain)
	}
	return nil
}

// Summary describes what a prestige would do right now
type Summary struct {
	Gain              float64 `json:"gain"`
	Eligible          bool    `json:"eligible"`
	Reason            string  `json:"reason,omitempty"`
	Robocoins         float64 `json:"robocoins"`
	CurrentMultiplier float64 `json:"currentMultiplier"`
	NextMultiplier    float64 `json:"nextMultiplier"`
	PrestigeCount     int     `json:"prestigeCount"`
}

// Preview summarises a prestige without performing it
func Preview(state *domain.PlayerState) Summary {
	gain := RobocoinsGain(state.TotalEarned)
	s := Summary{
		Gain:              gain,
		Eligible:          true,
		Robocoins:         state.Robocoins,
		CurrentMultiplier: BonusMultiplier(state.Robocoins),
		NextMultiplier:    BonusMultiplier(state.Robocoins + gain),
		PrestigeCount:     state.PrestigeCount,
	}
	if err := Check(state); err != nil {
		s.Eligible = false
		s.Reason = err.Error()
	}
	return s
}
