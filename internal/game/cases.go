package game

import (
	"fmt"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// CaseResult describes one opened case
type CaseResult struct {
	Reward       domain.CaseReward `json:"reward"`
	TierUnlocked domain.CaseTier   `json:"tierUnlocked,omitempty"`
	Shield       bool              `json:"shield"`
}

// OpenCase buys a case of the tier and grants one random reward from its pool
func (e *Engine) OpenCase(tier domain.CaseTier) (CaseResult, error) {
	e.resetCombo()
	s := e.state

	c, ok := catalog.Case(tier)
	if !ok {
		return CaseResult{}, e.reject(domain.NotifyCaseRejected, fmt.Errorf("%w: %s", domain.ErrUnknownCase, tier))
	}
	if !s.CaseUnlocked(tier) {
		return CaseResult{}, e.reject(domain.NotifyCaseRejected, fmt.Errorf("%w: %s", domain.ErrCaseLocked, c.Name))
	}
	if s.Money < c.Cost {
		return CaseResult{}, e.reject(domain.NotifyCaseRejected,
			fmt.Errorf("%w: %s costs %s", domain.ErrInsufficientFunds, c.Name, format.Number(c.Cost)))
	}

	var res CaseResult
	s.Money -= c.Cost
	if s.CasesOpened == nil {
		s.CasesOpened = catalog.FreshCaseCounters()
	}
	s.CasesOpened[tier]++

	if c.NextTier != "" && s.CasesOpened[tier] >= c.RequiredOpens && !s.CaseUnlocked(c.NextTier) {
		s.UnlockedCases = append(s.UnlockedCases, c.NextTier)
		res.TierUnlocked = c.NextTier
		next, _ := catalog.Case(c.NextTier)
		e.notify(domain.NotifyCaseTierUnlocked, domain.SeveritySuccess,
			fmt.Sprintf("%s unlocked!", next.Name),
			map[string]interface{}{"tier": c.NextTier})
	}

	res.Reward = c.Rewards[utils.PickIndex(e.rnd, len(c.Rewards))]
	e.grantReward(res.Reward)
	e.notify(domain.NotifyCaseReward, domain.SeveritySuccess,
		fmt.Sprintf("%s reward: %s", c.Name, res.Reward.Name),
		map[string]interface{}{"tier": tier, "reward": res.Reward.ID, "rarity": res.Reward.Rarity})

	if utils.Roll(e.rnd, CaseShieldChance) {
		e.grantShield(CaseShieldSeconds)
		res.Shield = true
		e.notify(domain.NotifyShield, domain.SeverityInfo, "Anti-effect shield active for 3 minutes",
			map[string]interface{}{"seconds": CaseShieldSeconds})
	}

	e.requestSave()
	return res, nil
}

func (e *Engine) grantReward(r domain.CaseReward) {
	s := e.state
	switch r.Type {
	case domain.RewardClickEffect:
		s.ClickEffects = append(s.ClickEffects, r.ID)
	case domain.RewardVisualEffect:
		s.VisualEffects = append(s.VisualEffects, r.ID)
	case domain.RewardBonus:
		s.BonusEffects = append(s.BonusEffects, r.ID)
	case domain.RewardSpecial:
		s.SpecialEffects = append(s.SpecialEffects, r.ID)
	}
}
