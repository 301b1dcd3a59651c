package catalog

import "github.com/osse101/CyberClicker_Go/internal/domain"

// NewPlayerState returns the state of a brand new player
func NewPlayerState() *domain.PlayerState {
	state := &domain.PlayerState{
		MoneyPerClick:       1,
		Upgrades:            FreshUpgrades(),
		Skins:               make(map[domain.SkinID]domain.SkinState, len(skins)),
		ActiveSkin:          domain.StarterSkin,
		PlayerName:          domain.DefaultPlayerName,
		ClickEffects:        []domain.RewardID{},
		VisualEffects:       []domain.RewardID{},
		BonusEffects:        []domain.RewardID{},
		SpecialEffects:      []domain.RewardID{},
		ActiveAntiEffects:   []domain.AntiEffect{},
		Language:            domain.LanguageEnglish,
		UnlockedCases:       []domain.CaseTier{domain.CaseBasic},
		CasesOpened:         FreshCaseCounters(),
		CustomThemes:        map[string]domain.CustomTheme{},
		TemporaryMultiplier: 1,
	}
	for _, s := range skins {
		state.Skins[s.ID] = domain.SkinState{Owned: s.ID == domain.StarterSkin}
	}
	return state
}

// FreshUpgrades returns every upgrade at level 0
func FreshUpgrades() map[domain.UpgradeID]domain.UpgradeState {
	m := make(map[domain.UpgradeID]domain.UpgradeState, len(upgrades))
	for _, u := range upgrades {
		m[u.ID] = domain.UpgradeState{}
	}
	return m
}

// FreshCaseCounters returns a zero open counter for every tier
func FreshCaseCounters() map[domain.CaseTier]int {
	m := make(map[domain.CaseTier]int, len(cases))
	for _, c := range cases {
		m[c.Tier] = 0
	}
	return m
}

// AllUpgradesOwned reports whether every upgrade is at level 1 or more
func AllUpgradesOwned(state *domain.PlayerState) bool {
	for _, u := range upgrades {
		if state.Level(u.ID) < 1 {
			return false
		}
	}
	return true
}

// AllSkinsOwned reports whether every skin in the chain is owned
func AllSkinsOwned(state *domain.PlayerState) bool {
	for _, s := range skins {
		if !state.Skins[s.ID].Owned {
			return false
		}
	}
	return true
}
