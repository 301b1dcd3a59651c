package domain

import "time"

// NotificationKind classifies a player-facing message
type NotificationKind string

const (
	NotifyClickBlocked       NotificationKind = "click_blocked"
	NotifyUpgradePurchased   NotificationKind = "upgrade_purchased"
	NotifyUpgradeRejected    NotificationKind = "upgrade_rejected"
	NotifyCategoryUnlocked   NotificationKind = "category_unlocked"
	NotifySkinUnlocked       NotificationKind = "skin_unlocked"
	NotifySkinApplied        NotificationKind = "skin_applied"
	NotifySkinRejected       NotificationKind = "skin_rejected"
	NotifyDesktopUnlocked    NotificationKind = "desktop_unlocked"
	NotifyCaseReward         NotificationKind = "case_reward"
	NotifyCaseRejected       NotificationKind = "case_rejected"
	NotifyCaseTierUnlocked   NotificationKind = "case_tier_unlocked"
	NotifyShield             NotificationKind = "shield"
	NotifyAntiEffectApplied  NotificationKind = "anti_effect_applied"
	NotifyAntiEffectFixed    NotificationKind = "anti_effect_fixed"
	NotifyAntiEffectExpired  NotificationKind = "anti_effect_expired"
	NotifyAntiEffectRejected NotificationKind = "anti_effect_rejected"
	NotifyPrestige           NotificationKind = "prestige"
	NotifyPrestigeRejected   NotificationKind = "prestige_rejected"
	NotifyThemesUnlocked     NotificationKind = "themes_unlocked"
	NotifyOfflineEarnings    NotificationKind = "offline_earnings"
	NotifyWheelPrize         NotificationKind = "wheel_prize"
	NotifyWheelRejected      NotificationKind = "wheel_rejected"
	NotifyTheme              NotificationKind = "theme"
	NotifyProfile            NotificationKind = "profile"
	NotifyReset              NotificationKind = "reset"
)

// Severity of a notification
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a discrete outcome message for the presentation layer
type Notification struct {
	Kind     NotificationKind       `json:"kind"`
	Severity Severity               `json:"severity"`
	Message  string                 `json:"message"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Name      string    `json:"name"`
	Score     float64   `json:"score"`
	Prestige  int       `json:"prestige"`
	UpdatedAt time.Time `json:"updatedAt"`
}
