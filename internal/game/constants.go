package game

// ============================================================================
// Click Resolution
// ============================================================================

// ComboWindowSeconds is how long a combo survives without another click
const ComboWindowSeconds = 3

// CriticalMultiplier is applied to a critical click
const CriticalMultiplier = 5

// LuckyBonusFactor is the bonus of a lucky click relative to the click value
const LuckyBonusFactor = 10

// MegaClickChance is the chance of a mega click once Mega Click is owned
const MegaClickChance = 0.01

// TemporalShiftMultiplier is applied when Temporal Shift procs
const TemporalShiftMultiplier = 2

// ============================================================================
// Purchases
// ============================================================================

// SignificantPurchaseCost is the cost above which a purchase requests a save
const SignificantPurchaseCost = 10000

// ============================================================================
// Cases
// ============================================================================

// CaseShieldChance is the chance of a shield when opening a case
const CaseShieldChance = 0.1

// CaseShieldSeconds is the shield duration granted by a case
const CaseShieldSeconds = 180

// ============================================================================
// Fortune Wheel
// ============================================================================

const (
	DoubleMultiplierSeconds = 60
	TripleMultiplierSeconds = 30
	BoostSeconds            = 120
	NoAutoClickerBonus      = 2000
	LuckyDayMultiplier      = 5
	LuckyDaySeconds         = 30
	WheelShieldSeconds      = 300
	CleanupBonus            = 5000
)

// Special wheel outcomes
const (
	SpecialLuckyDay     = "lucky_day"
	SpecialShield       = "shield"
	SpecialCleanup      = "cleanup"
	SpecialCleanupBonus = "cleanup_bonus"
)

// ============================================================================
// Profile
// ============================================================================

// MaxNameLength bounds player and theme names
const MaxNameLength = 32

// CustomThemePrefix starts every custom theme id
const CustomThemePrefix = "custom-"
