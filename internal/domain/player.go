package domain

import (
	"slices"
	"time"
)

// UpgradeState is a player's progress on one upgrade
type UpgradeState struct {
	Level int  `json:"level" mapstructure:"level"`
	Owned bool `json:"owned" mapstructure:"owned"`
}

// SkinState is a player's ownership of one skin
type SkinState struct {
	Owned bool `json:"owned" mapstructure:"owned"`
}

// CustomTheme is a player-defined palette
type CustomTheme struct {
	Name   string  `json:"name" mapstructure:"name"`
	Colors Palette `json:"colors" mapstructure:"colors"`
}

// Supported languages
const (
	LanguageEnglish   = "en"
	LanguageUkrainian = "uk"
)

// DefaultPlayerName is used until the player renames themselves
const DefaultPlayerName = "Player"

// PlayerState is the whole simulation state of one player.
// The fields after LastSaved are transient and never persisted.
type PlayerState struct {
	Money         float64                    `json:"money"`
	TotalEarned   float64                    `json:"totalEarned"`
	ClickCount    int64                      `json:"clickCount"`
	MoneyPerClick float64                    `json:"moneyPerClick"`
	Upgrades      map[UpgradeID]UpgradeState `json:"upgrades"`
	Skins         map[SkinID]SkinState       `json:"skins"`
	ActiveSkin    SkinID                     `json:"activeSkin"`
	PlayerName    string                     `json:"playerName"`

	ClickEffects   []RewardID `json:"clickEffects"`
	VisualEffects  []RewardID `json:"visualEffects"`
	BonusEffects   []RewardID `json:"bonusEffects"`
	SpecialEffects []RewardID `json:"specialEffects"`

	Robocoins      float64 `json:"robocoins"`
	TotalRobocoins float64 `json:"totalRobocoins"`
	PrestigeCount  int     `json:"prestigeCount"`

	ActiveAntiEffects []AntiEffect `json:"activeAntiEffects"`

	Language      string           `json:"language"`
	UnlockedCases []CaseTier       `json:"unlockedCases"`
	CasesOpened   map[CaseTier]int `json:"casesOpened"`

	MusicEnabled             bool                   `json:"musicEnabled"`
	UseDesktopInterface      bool                   `json:"useDesktopInterface"`
	DesktopInterfaceUnlocked bool                   `json:"desktopInterfaceUnlocked"`
	CustomThemes             map[string]CustomTheme `json:"customThemes"`

	LastSaved time.Time `json:"lastSaved"`

	ComboCount          int     `json:"comboCount"`
	ComboTimer          int     `json:"comboTimer"`
	TemporaryMultiplier float64 `json:"temporaryMultiplier"`
	MultiplierTimeLeft  int     `json:"multiplierTimeLeft"`
	ShieldActive        bool    `json:"antiEffectProtection"`
	ShieldTimeLeft      int     `json:"antiEffectProtectionTimeLeft"`
	ClickBlocked        bool    `json:"clickButtonBlocked"`
	AdvancedNotified    bool    `json:"-"`
	SpecialNotified     bool    `json:"-"`
}

// Clone returns a deep copy safe to hand to readers outside the session
func (p *PlayerState) Clone() *PlayerState {
	c := *p
	c.Upgrades = cloneMap(p.Upgrades)
	c.Skins = cloneMap(p.Skins)
	c.CasesOpened = cloneMap(p.CasesOpened)
	c.CustomThemes = cloneMap(p.CustomThemes)
	c.ClickEffects = slices.Clone(p.ClickEffects)
	c.VisualEffects = slices.Clone(p.VisualEffects)
	c.BonusEffects = slices.Clone(p.BonusEffects)
	c.SpecialEffects = slices.Clone(p.SpecialEffects)
	c.ActiveAntiEffects = slices.Clone(p.ActiveAntiEffects)
	c.UnlockedCases = slices.Clone(p.UnlockedCases)
	return &c
}

// Level returns the level of an upgrade, 0 when missing
func (p *PlayerState) Level(id UpgradeID) int {
	return p.Upgrades[id].Level
}

// HasAntiEffect reports whether an anti-effect with the id is active
func (p *PlayerState) HasAntiEffect(id string) bool {
	return slices.ContainsFunc(p.ActiveAntiEffects, func(a AntiEffect) bool { return a.ID == id })
}

// HasAntiEffectType reports whether any active anti-effect has the type
func (p *PlayerState) HasAntiEffectType(t AntiEffectType) bool {
	return slices.ContainsFunc(p.ActiveAntiEffects, func(a AntiEffect) bool { return a.Type == t })
}

// UpgradeBlocked reports whether an upgrade-type anti-effect targets the upgrade
func (p *PlayerState) UpgradeBlocked(id UpgradeID) bool {
	return slices.ContainsFunc(p.ActiveAntiEffects, func(a AntiEffect) bool {
		return a.Type == AntiEffectUpgrade && a.TargetUpgrade == id
	})
}

// Penalty returns the compounded (1-severity) factor of every active effect of the given types
func (p *PlayerState) Penalty(types ...AntiEffectType) float64 {
	factor := 1.0
	for _, a := range p.ActiveAntiEffects {
		if slices.Contains(types, a.Type) {
			factor *= 1 - a.Severity
		}
	}
	return factor
}

// CaseUnlocked reports whether the tier can be opened
func (p *PlayerState) CaseUnlocked(tier CaseTier) bool {
	return slices.Contains(p.UnlockedCases, tier)
}

// AllRewards flattens the reward buckets in click, visual, bonus, special order
func (p *PlayerState) AllRewards() []RewardID {
	out := make([]RewardID, 0, len(p.ClickEffects)+len(p.VisualEffects)+len(p.BonusEffects)+len(p.SpecialEffects))
	out = append(out, p.ClickEffects...)
	out = append(out, p.VisualEffects...)
	out = append(out, p.BonusEffects...)
	return append(out, p.SpecialEffects...)
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
