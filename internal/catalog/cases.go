package catalog

import "github.com/osse101/CyberClicker_Go/internal/domain"

// Well-known reward ids with gameplay effects
const (
	RewardLuckyCharm       domain.RewardID = "basic-4"
	RewardCreditBoost      domain.RewardID = "premium-3"
	RewardTimeWarp         domain.RewardID = "premium-5"
	RewardEfficiencyModule domain.RewardID = "elite-3"
	RewardTemporalShift    domain.RewardID = "elite-5"
	RewardGoldenTouch      domain.RewardID = "legendary-3"
	RewardTimeDilation     domain.RewardID = "legendary-5"
)

var cases = []domain.Case{
	{
		Tier: domain.CaseBasic, Name: "Basic Case", Cost: 5000, NextTier: domain.CasePremium, RequiredOpens: 10,
		Description: "Common rewards with a small chance for something special",
		Rewards: []domain.CaseReward{
			{ID: "basic-1", Name: "Pixel Dust", Type: domain.RewardClickEffect, Description: "Adds pixel particles to your clicks", Rarity: domain.RarityCommon, Value: 1},
			{ID: "basic-2", Name: "Echo Click", Type: domain.RewardClickEffect, Description: "Creates echo ripples when clicking", Rarity: domain.RarityCommon, Value: 1},
			{ID: "basic-3", Name: "Neon Glow", Type: domain.RewardVisualEffect, Description: "Adds a subtle neon glow to the game", Rarity: domain.RarityUncommon, Value: 2},
			{ID: RewardLuckyCharm, Name: "Lucky Charm", Type: domain.RewardBonus, Description: "+5% chance for critical clicks", Rarity: domain.RarityUncommon, Value: 5},
			{ID: "basic-5", Name: "Digital Rain", Type: domain.RewardVisualEffect, Description: "Matrix-style digital rain in the background", Rarity: domain.RarityRare, Value: 3},
		},
	},
	{
		Tier: domain.CasePremium, Name: "Premium Case", Cost: 25000, NextTier: domain.CaseElite, RequiredOpens: 10,
		Description: "Better rewards with higher chances for rare items",
		Rewards: []domain.CaseReward{
			{ID: "premium-1", Name: "Plasma Burst", Type: domain.RewardClickEffect, Description: "Explosive plasma effect on clicks", Rarity: domain.RarityUncommon, Value: 2},
			{ID: "premium-2", Name: "Cyber Grid", Type: domain.RewardVisualEffect, Description: "Enhanced grid background with animations", Rarity: domain.RarityUncommon, Value: 2},
			{ID: RewardCreditBoost, Name: "Credit Boost", Type: domain.RewardBonus, Description: "+10% credits per click", Rarity: domain.RarityRare, Value: 10},
			{ID: "premium-4", Name: "Hologram Click", Type: domain.RewardClickEffect, Description: "Holographic projection on each click", Rarity: domain.RarityRare, Value: 3},
			{ID: RewardTimeWarp, Name: "Time Warp", Type: domain.RewardSpecial, Description: "Auto clickers run 20% faster", Rarity: domain.RarityEpic, Value: 20},
		},
	},
	{
		Tier: domain.CaseElite, Name: "Elite Case", Cost: 100000, NextTier: domain.CaseLegendary, RequiredOpens: 10,
		Description: "High-quality rewards with guaranteed rare or better",
		Rewards: []domain.CaseReward{
			{ID: "elite-1", Name: "Quantum Particles", Type: domain.RewardClickEffect, Description: "Quantum particle effects on clicks", Rarity: domain.RarityRare, Value: 3},
			{ID: "elite-2", Name: "Neural Network", Type: domain.RewardVisualEffect, Description: "Neural network animations in the background", Rarity: domain.RarityRare, Value: 3},
			{ID: RewardEfficiencyModule, Name: "Efficiency Module", Type: domain.RewardBonus, Description: "Upgrades cost 15% less", Rarity: domain.RarityEpic, Value: 15},
			{ID: "elite-4", Name: "Fractal Click", Type: domain.RewardClickEffect, Description: "Fractal patterns explode from clicks", Rarity: domain.RarityEpic, Value: 4},
			{ID: RewardTemporalShift, Name: "Temporal Shift", Type: domain.RewardSpecial, Description: "Chance to get double credits randomly", Rarity: domain.RarityLegendary, Value: 5},
		},
	},
	{
		Tier: domain.CaseLegendary, Name: "Legendary Case", Cost: 500000,
		Description: "The best rewards with a chance for legendary items",
		Rewards: []domain.CaseReward{
			{ID: "legendary-1", Name: "Supernova", Type: domain.RewardClickEffect, Description: "Cosmic explosion on critical clicks", Rarity: domain.RarityEpic, Value: 4},
			{ID: "legendary-2", Name: "Reality Glitch", Type: domain.RewardVisualEffect, Description: "Reality-bending visual glitches", Rarity: domain.RarityEpic, Value: 4},
			{ID: RewardGoldenTouch, Name: "Golden Touch", Type: domain.RewardBonus, Description: "+25% credits from all sources", Rarity: domain.RarityLegendary, Value: 25},
			{ID: "legendary-4", Name: "Dimensional Rift", Type: domain.RewardClickEffect, Description: "Opens rifts in reality when clicking", Rarity: domain.RarityLegendary, Value: 5},
			{ID: RewardTimeDilation, Name: "Time Dilation", Type: domain.RewardSpecial, Description: "Everything runs 30% faster", Rarity: domain.RarityLegendary, Value: 30},
		},
	},
}

var (
	caseIndex   = indexBy(cases, func(c domain.Case) domain.CaseTier { return c.Tier })
	rewardIndex = buildRewardIndex()
)

func buildRewardIndex() map[domain.RewardID]domain.CaseReward {
	m := make(map[domain.RewardID]domain.CaseReward)
	for _, c := range cases {
		for _, r := range c.Rewards {
			m[r.ID] = r
		}
	}
	return m
}

// Cases returns the tiers in unlock order
func Cases() []domain.Case {
	out := make([]domain.Case, len(cases))
	for i, c := range cases {
		c.Rewards = append([]domain.CaseReward(nil), c.Rewards...)
		out[i] = c
	}
	return out
}

// Case looks up one tier
func Case(tier domain.CaseTier) (domain.Case, bool) {
	i, ok := caseIndex[tier]
	if !ok {
		return domain.Case{}, false
	}
	return cases[i], true
}

// Reward looks up a reward across every tier
func Reward(id domain.RewardID) (domain.CaseReward, bool) {
	r, ok := rewardIndex[id]
	return r, ok
}
