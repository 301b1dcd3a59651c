package domain

// UpgradeID identifies an upgrade in the catalog
type UpgradeID string

const (
	UpgradeDoubleValue      UpgradeID = "doubleValue"
	UpgradeAutoClicker      UpgradeID = "autoClicker"
	UpgradeCriticalClick    UpgradeID = "criticalClick"
	UpgradePassiveIncome    UpgradeID = "passiveIncome"
	UpgradeClickMultiplier  UpgradeID = "clickMultiplier"
	UpgradeAutoClickerSpeed UpgradeID = "autoClickerSpeed"
	UpgradeClickCombo       UpgradeID = "clickCombo"
	UpgradeOfflineEarnings  UpgradeID = "offlineEarnings"
	UpgradeLuckyClicks      UpgradeID = "luckyClicks"
	UpgradeMegaClick        UpgradeID = "megaClick"
)

// UpgradeCategory gates groups of upgrades behind level requirements
type UpgradeCategory string

const (
	CategoryBasic    UpgradeCategory = "basic"
	CategoryAdvanced UpgradeCategory = "advanced"
	CategorySpecial  UpgradeCategory = "special"
)

// Upgrade is the static definition of a purchasable upgrade
type Upgrade struct {
	ID               UpgradeID       `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	BaseCost         float64         `json:"baseCost"`
	CostMultiplier   float64         `json:"costMultiplier"`
	Effect           float64         `json:"effect"`
	EffectMultiplier float64         `json:"effectMultiplier"`
	Category         UpgradeCategory `json:"category"`
	UnlockCost       float64         `json:"unlockCost"`
}

// SkinID identifies a cosmetic skin
type SkinID string

// StarterSkin is owned by every fresh player
const StarterSkin SkinID = "cyberpunk"

// Palette is a set of theme colors
type Palette struct {
	Primary    string `json:"primary" mapstructure:"primary"`
	Secondary  string `json:"secondary" mapstructure:"secondary"`
	Accent     string `json:"accent" mapstructure:"accent"`
	Background string `json:"background" mapstructure:"background"`
}

// Skin is the static definition of a cosmetic skin
type Skin struct {
	ID                SkinID  `json:"id"`
	Name              string  `json:"name"`
	Cost              float64 `json:"cost"`
	UnlockRequirement SkinID  `json:"unlockRequirement,omitempty"`
	Colors            Palette `json:"colors"`
}

// CaseTier identifies a case in the unlock chain
type CaseTier string

const (
	CaseBasic     CaseTier = "basic"
	CasePremium   CaseTier = "premium"
	CaseElite     CaseTier = "elite"
	CaseLegendary CaseTier = "legendary"
)

// RewardID identifies a case reward, e.g. "elite-3"
type RewardID string

// RewardType decides which bucket a reward lands in
type RewardType string

const (
	RewardClickEffect  RewardType = "clickEffect"
	RewardVisualEffect RewardType = "visualEffect"
	RewardBonus        RewardType = "bonus"
	RewardSpecial      RewardType = "special"
)

// Rarity is display metadata for rewards
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// CaseReward is one entry of a case's reward pool
type CaseReward struct {
	ID          RewardID   `json:"id"`
	Name        string     `json:"name"`
	Type        RewardType `json:"type"`
	Description string     `json:"description"`
	Rarity      Rarity     `json:"rarity"`
	Value       float64    `json:"value"`
}

// Case is the static definition of a case tier
type Case struct {
	Tier          CaseTier     `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Cost          float64      `json:"cost"`
	NextTier      CaseTier     `json:"nextCase,omitempty"`
	RequiredOpens int          `json:"requiredOpens"`
	Rewards       []CaseReward `json:"rewards"`
}

// WheelPrizeType is the kind of a fortune wheel prize
type WheelPrizeType string

const (
	PrizeMoney      WheelPrizeType = "money"
	PrizeMultiplier WheelPrizeType = "multiplier"
	PrizeBoost      WheelPrizeType = "boost"
	PrizeSpecial    WheelPrizeType = "special"
)

// WheelPrize is one segment of the fortune wheel
type WheelPrize struct {
	ID    string         `json:"id"`
	Type  WheelPrizeType `json:"type"`
	Value float64        `json:"value"`
	Label string         `json:"label"`
}
