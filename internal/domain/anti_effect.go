package domain

// AntiEffectType decides which part of production an anti-effect degrades
type AntiEffectType string

const (
	AntiEffectIncome   AntiEffectType = "income"
	AntiEffectClick    AntiEffectType = "click"
	AntiEffectAuto     AntiEffectType = "auto"
	AntiEffectCritical AntiEffectType = "critical"
	AntiEffectCombo    AntiEffectType = "combo"
	AntiEffectPassive  AntiEffectType = "passive"
	AntiEffectUpgrade  AntiEffectType = "upgrade"
)

// DurationUntilFixed marks an anti-effect that stays until paid off
const DurationUntilFixed = -1

// Well-known anti-effect ids with behavior beyond their type
const (
	AntiEffectClickButtonBlock = "click-button-block"
	AntiEffectRansomware       = "ransomware"
)

// AntiEffect is both the catalog definition and the active instance of a negative effect
type AntiEffect struct {
	ID            string         `json:"id" mapstructure:"id"`
	Name          string         `json:"name" mapstructure:"name"`
	Description   string         `json:"description" mapstructure:"description"`
	Type          AntiEffectType `json:"type" mapstructure:"type"`
	TargetUpgrade UpgradeID      `json:"targetUpgrade,omitempty" mapstructure:"targetUpgrade"`
	Severity      float64        `json:"severity" mapstructure:"severity"`
	FixCost       float64        `json:"fixCost" mapstructure:"fixCost"`
	Duration      int            `json:"duration" mapstructure:"duration"`
	Applied       bool           `json:"applied" mapstructure:"applied"`
	TimeRemaining int            `json:"timeRemaining,omitempty" mapstructure:"timeRemaining"`
}

// Timed reports whether the effect expires on its own
func (a AntiEffect) Timed() bool {
	return a.Duration > 0
}
